package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourses() []CourseImport {
	return []CourseImport{
		{CourseID: "CS101", Title: "Intro to Programming", Department: "CS"},
		{CourseID: "CS102", Title: "Programming II", Department: "CS", Prerequisites: []string{"CS101"}},
	}
}

func validDegrees() []DegreeImport {
	return []DegreeImport{
		{
			DegreeName:         "Bachelor of Science in Computer Science",
			DegreeAbbreviation: "BSCS",
			CreditsToGraduate:  120,
			CourseRequirements: []CategoryImport{
				{
					Category:        "Core",
					CreditsRequired: 6,
					Courses:         []CategoryCourseImport{{Code: "CS101"}, {Code: "CS102"}},
				},
			},
		},
	}
}

func TestValidateImports_CleanDocumentsPass(t *testing.T) {
	assert.Empty(t, ValidateImports(validCourses(), validDegrees()))
}

func TestValidateImports_CourseErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(courses []CourseImport) []CourseImport
		wantMsg string
	}{
		{
			name: "missing course id",
			mutate: func(c []CourseImport) []CourseImport {
				c[0].CourseID = ""
				return c
			},
			wantMsg: "course_id is required",
		},
		{
			name: "missing title",
			mutate: func(c []CourseImport) []CourseImport {
				c[1].Title = ""
				return c
			},
			wantMsg: "title is required",
		},
		{
			name: "duplicate course id",
			mutate: func(c []CourseImport) []CourseImport {
				c[1].CourseID = c[0].CourseID
				return c
			},
			wantMsg: "duplicate id",
		},
		{
			name: "non-positive credits",
			mutate: func(c []CourseImport) []CourseImport {
				zero := 0.0
				c[0].Credits = &zero
				return c
			},
			wantMsg: "credits must be positive",
		},
		{
			name: "unknown prerequisite",
			mutate: func(c []CourseImport) []CourseImport {
				c[1].Prerequisites = []string{"CS999"}
				return c
			},
			wantMsg: `course "CS999" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateImports(tt.mutate(validCourses()), nil)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func TestValidateImports_ForwardPrerequisiteReferenceAccepted(t *testing.T) {
	courses := []CourseImport{
		{CourseID: "CS102", Title: "Programming II", Prerequisites: []string{"CS101"}},
		{CourseID: "CS101", Title: "Intro to Programming"},
	}
	assert.Empty(t, ValidateImports(courses, nil))
}

func TestValidateImports_DegreeErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(degrees []DegreeImport) []DegreeImport
		wantMsg string
	}{
		{
			name: "missing degree name",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].DegreeName = ""
				return d
			},
			wantMsg: "degree_name is required",
		},
		{
			name: "missing abbreviation",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].DegreeAbbreviation = ""
				return d
			},
			wantMsg: "degree_abbreviation is required",
		},
		{
			name: "non-positive graduation credits",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].CreditsToGraduate = 0
				return d
			},
			wantMsg: "credits_to_graduate must be positive",
		},
		{
			name: "missing category name",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].CourseRequirements[0].Category = ""
				return d
			},
			wantMsg: "category is required",
		},
		{
			name: "negative category credits",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].CourseRequirements[0].CreditsRequired = -3
				return d
			},
			wantMsg: "credits_required must not be negative",
		},
		{
			name: "category references unknown course",
			mutate: func(d []DegreeImport) []DegreeImport {
				d[0].CourseRequirements[0].Courses[0].Code = "CS999"
				return d
			},
			wantMsg: `course "CS999" not found in catalog`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateImports(validCourses(), tt.mutate(validDegrees()))
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.wantMsg)
		})
	}
}

func TestValidateImports_CollectsEveryError(t *testing.T) {
	courses := validCourses()
	courses[0].CourseID = ""
	courses[1].Title = ""

	degrees := validDegrees()
	degrees[0].CreditsToGraduate = -1

	errs := ValidateImports(courses, degrees)
	assert.GreaterOrEqual(t, len(errs), 3, "validation reports all problems at once")
}
