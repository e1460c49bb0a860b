package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/rank"
	"github.com/uniflowhq/uniflow/internal/testutil"
)

func newDegreeService(t *testing.T) DegreeService {
	t.Helper()
	store := testutil.NewTestStore(t)
	return NewDegreeService(store, rank.NewKeywordRanker(store))
}

func TestDegreeService_ListReturnsCatalogOrder(t *testing.T) {
	svc := newDegreeService(t)

	degrees, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, degrees, 2)
	assert.Equal(t, "BSCS", degrees[0].Abbreviation)
	assert.Equal(t, "MBA", degrees[1].Abbreviation)
}

func TestDegreeService_Get(t *testing.T) {
	svc := newDegreeService(t)

	degree, err := svc.Get(context.Background(), "Master of Business Administration (MBA)")
	require.NoError(t, err)
	assert.Equal(t, "MBA", degree.Abbreviation)

	_, err = svc.Get(context.Background(), "Bachelor of Fine Arts (BFA)")
	assert.ErrorIs(t, err, catalog.ErrDegreeNotFound)
}

func TestDegreeService_SearchCourses(t *testing.T) {
	svc := newDegreeService(t)

	courses, err := svc.SearchCourses(context.Background(), "machine learning", 3)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	assert.Equal(t, "CS440", courses[0].CourseID)
	assert.LessOrEqual(t, len(courses), 3)
}

func TestDegreeService_SearchCoursesDefaultsLimit(t *testing.T) {
	svc := newDegreeService(t)

	courses, err := svc.SearchCourses(context.Background(), "data", 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(courses), defaultSearchLimit)
}

func TestDegreeService_SearchCoursesRejectsEmptyQuery(t *testing.T) {
	svc := newDegreeService(t)

	_, err := svc.SearchCourses(context.Background(), "   ", 5)
	assert.ErrorIs(t, err, planner.ErrInvalidRequest)
}
