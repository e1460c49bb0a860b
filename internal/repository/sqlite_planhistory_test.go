package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/testutil"
)

func testRecord(degree string, createdAt time.Time) *PlanRecord {
	return &PlanRecord{
		ID:             uuid.NewString(),
		DegreeName:     degree,
		Abbreviation:   "BSCS",
		TargetCredits:  90,
		PlannedCredits: 37,
		Semesters:      4,
		Ranker:         "keyword",
		Request:        []byte(`{"degree_name":"` + degree + `","credits_remaining":90}`),
		Plans: []domain.SemesterPlan{
			{
				SemesterLabel: "Semester 1",
				Courses:       []domain.PlannedCourse{{CourseID: "CS310", Title: "Algorithms", Credits: 3}},
				TotalCredits:  3,
			},
			{
				SemesterLabel: "Final Semester",
				Courses:       []domain.PlannedCourse{{CourseID: "CS494", Title: "Senior Capstone Project", Credits: 3}},
				TotalCredits:  3,
				IsFinal:       true,
			},
		},
		Warnings:  []string{"elective gap of 53 credit(s) could not be filled from the catalog"},
		CreatedAt: createdAt,
	}
}

func TestPlanHistoryRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord("Bachelor of Science in Computer Science (BSCS)", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.DegreeName, got.DegreeName)
	assert.Equal(t, "BSCS", got.Abbreviation)
	assert.InDelta(t, 90, got.TargetCredits, 1e-9)
	assert.InDelta(t, 37, got.PlannedCredits, 1e-9)
	assert.Equal(t, 4, got.Semesters)
	assert.Equal(t, "keyword", got.Ranker)
	assert.JSONEq(t, string(rec.Request), string(got.Request))
	assert.Equal(t, rec.Warnings, got.Warnings)

	require.Len(t, got.Plans, 2)
	assert.Equal(t, "Semester 1", got.Plans[0].SemesterLabel)
	assert.True(t, got.Plans[1].IsFinal)
	assert.Equal(t, "CS494", got.Plans[1].Courses[0].CourseID)
}

func TestPlanHistoryRepo_GetMissing(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanHistoryRepo_ListRecentOrdersNewestFirst(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	oldest := testRecord("BSCS", base)
	middle := testRecord("BSCS", base.Add(time.Hour))
	newest := testRecord("BSCS", base.Add(2*time.Hour))
	for _, rec := range []*PlanRecord{oldest, newest, middle} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	records, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, newest.ID, records[0].ID)
	assert.Equal(t, middle.ID, records[1].ID)
	assert.Equal(t, oldest.ID, records[2].ID)
}

func TestPlanHistoryRepo_ListRecentHonorsLimit(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, testRecord("BSCS", base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPlanHistoryRepo_ListByDegree(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	bscs := testRecord("Bachelor of Science in Computer Science (BSCS)", base)
	mba := testRecord("Master of Business Administration (MBA)", base.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, bscs))
	require.NoError(t, repo.Create(ctx, mba))

	records, err := repo.ListByDegree(ctx, bscs.DegreeName, 10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, bscs.ID, records[0].ID)
}

func TestPlanHistoryRepo_Delete(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord("BSCS", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}

func TestPlanHistoryRepo_EmptyWarningsRoundTrip(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord("BSCS", time.Now().UTC())
	rec.Warnings = nil
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Warnings)
}
