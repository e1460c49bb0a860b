package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := Build(validCourses(), validDegrees())
	require.NoError(t, err)
	return store
}

func TestBuild_RejectsInvalidDocuments(t *testing.T) {
	courses := validCourses()
	courses[0].CourseID = ""

	_, err := Build(courses, validDegrees())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed")
}

func TestBuild_AppliesDefaultCredits(t *testing.T) {
	store := newStore(t)

	course, err := store.CourseByID("CS101")
	require.NoError(t, err)
	assert.InDelta(t, 3, course.Credits, 1e-9, "unspecified credits default to 3")
}

func TestBuild_KeepsExplicitCredits(t *testing.T) {
	courses := validCourses()
	one := 1.0
	courses[0].Credits = &one

	store, err := Build(courses, validDegrees())
	require.NoError(t, err)

	course, err := store.CourseByID("CS101")
	require.NoError(t, err)
	assert.InDelta(t, 1, course.Credits, 1e-9)
}

func TestStore_LookupDegree(t *testing.T) {
	store := newStore(t)

	degree, err := store.LookupDegree("Bachelor of Science in Computer Science")
	require.NoError(t, err)
	assert.Equal(t, "BSCS", degree.Abbreviation)
	require.Len(t, degree.Categories, 1)
	assert.Equal(t, "Core", degree.Categories[0].Name)

	// Category references resolve to full course records.
	require.Len(t, degree.Categories[0].Courses, 2)
	assert.Equal(t, "Intro to Programming", degree.Categories[0].Courses[0].Title)

	_, err = store.LookupDegree("Bachelor of Fine Arts")
	assert.ErrorIs(t, err, ErrDegreeNotFound)
}

func TestStore_CourseByID(t *testing.T) {
	store := newStore(t)

	course, err := store.CourseByID("CS102")
	require.NoError(t, err)
	assert.Equal(t, "Programming II", course.Title)

	_, err = store.CourseByID("CS999")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestStore_CoursesReturnsCopyInFileOrder(t *testing.T) {
	store := newStore(t)

	courses := store.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "CS101", courses[0].CourseID)
	assert.Equal(t, "CS102", courses[1].CourseID)

	// Mutating the copy must not disturb the store.
	courses[0].CourseID = "HACKED"
	fresh, err := store.CourseByID("CS101")
	require.NoError(t, err)
	assert.Equal(t, "CS101", fresh.CourseID)
}

func TestStore_Position(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, 0, store.Position("CS101"))
	assert.Equal(t, 1, store.Position("CS102"))
	assert.Equal(t, 2, store.Position("CS999"), "unknown ids sort after everything")
}

func TestStore_DegreesInCatalogOrder(t *testing.T) {
	degrees := append(validDegrees(), DegreeImport{
		DegreeName:         "Master of Science in Computer Science",
		DegreeAbbreviation: "MSCS",
		CreditsToGraduate:  36,
	})

	store, err := Build(validCourses(), degrees)
	require.NoError(t, err)

	all := store.Degrees()
	require.Len(t, all, 2)
	assert.Equal(t, "BSCS", all[0].Abbreviation)
	assert.Equal(t, "MSCS", all[1].Abbreviation)
}

func TestLoad_RoundTripsJSONDocuments(t *testing.T) {
	dir := t.TempDir()
	coursesPath := filepath.Join(dir, "courses.json")
	requirementsPath := filepath.Join(dir, "requirements.json")

	writeJSON(t, coursesPath, validCourses())
	writeJSON(t, requirementsPath, validDegrees())

	store, err := Load(coursesPath, requirementsPath)
	require.NoError(t, err)

	course, err := store.CourseByID("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Intro to Programming", course.Title)
}

func TestLoad_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	requirementsPath := filepath.Join(dir, "requirements.json")
	writeJSON(t, requirementsPath, validDegrees())

	_, err := Load(filepath.Join(dir, "nope.json"), requirementsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading course catalog")
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	coursesPath := filepath.Join(dir, "courses.json")
	require.NoError(t, os.WriteFile(coursesPath, []byte("{not json"), 0o644))

	_, err := LoadCourseImports(coursesPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing courses file")
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
