package testutil

import (
	"testing"

	"github.com/uniflowhq/uniflow/internal/catalog"
)

func credits(v float64) *float64 { return &v }

// TestCourseImports returns the course catalog used across tests: a
// bachelor's CS program with 1-credit labs, an elective pool, and an MBA
// program.
func TestCourseImports() []catalog.CourseImport {
	return []catalog.CourseImport{
		{CourseID: "APP101", Title: "Applied Foundations I", Department: "Applied Studies", SkillsTaught: []string{"communication"}},
		{CourseID: "APP103", Title: "Applied Foundations II", Department: "Applied Studies", SkillsTaught: []string{"teamwork"}},
		{CourseID: "APP201", Title: "Applied Research Methods", Department: "Applied Studies", SkillsTaught: []string{"research"}},

		{CourseID: "MATH201", Title: "Discrete Mathematics", Department: "Mathematics", SkillsTaught: []string{"logic", "proofs"}},
		{CourseID: "MATH301", Title: "Linear Algebra", Department: "Mathematics", SkillsTaught: []string{"linear algebra"}},

		{CourseID: "CS250", Title: "Data Structures", Department: "Computer Science", SkillsTaught: []string{"data structures", "algorithms"}},
		{CourseID: "CS250L", Title: "Data Structures Lab", Department: "Computer Science", Credits: credits(1), SkillsTaught: []string{"data structures"}},
		{CourseID: "CS310", Title: "Algorithms", Department: "Computer Science", SkillsTaught: []string{"algorithms"}},
		{CourseID: "CS311L", Title: "Algorithms Lab", Department: "Computer Science", Credits: credits(1), SkillsTaught: []string{"algorithms"}},
		{CourseID: "CS320", Title: "Operating Systems", Department: "Computer Science", SkillsTaught: []string{"systems programming"}},
		{CourseID: "CS330", Title: "Computer Networks", Department: "Computer Science", SkillsTaught: []string{"networking"}},
		{CourseID: "CS350", Title: "Software Engineering", Department: "Computer Science", SkillsTaught: []string{"software design", "teamwork"}},
		{CourseID: "CS360", Title: "Databases", Department: "Computer Science", SkillsTaught: []string{"sql", "data modeling"}},

		{CourseID: "CS410", Title: "Compilers", Department: "Computer Science", SkillsTaught: []string{"compilers"}},
		{CourseID: "CS420", Title: "Distributed Systems", Department: "Computer Science", SkillsTaught: []string{"distributed systems"}},
		{CourseID: "CS430", Title: "Computer Graphics", Department: "Computer Science", SkillsTaught: []string{"graphics"}},
		{CourseID: "CS440", Title: "Machine Learning", Department: "Computer Science", SkillsTaught: []string{"machine learning", "python"}},
		{CourseID: "CS450", Title: "Information Security", Department: "Computer Science", SkillsTaught: []string{"security"}},

		{CourseID: "CS494", Title: "Senior Capstone Project", Department: "Computer Science", SkillsTaught: []string{"software design", "teamwork"}},

		{CourseID: "DS210", Title: "Data Visualization", Department: "Data Science", SkillsTaught: []string{"visualization", "python"}},
		{CourseID: "DS310", Title: "Applied Statistics", Department: "Data Science", SkillsTaught: []string{"statistics"}},
		{CourseID: "AI400", Title: "Artificial Intelligence", Department: "Computer Science", SkillsTaught: []string{"machine learning", "search"}},
		{CourseID: "AI410", Title: "Deep Learning", Department: "Computer Science", SkillsTaught: []string{"machine learning", "neural networks"}},
		{CourseID: "WEB220", Title: "Web Development", Department: "Computer Science", SkillsTaught: []string{"javascript", "html"}},
		{CourseID: "SEC340", Title: "Network Security", Department: "Computer Science", SkillsTaught: []string{"security", "networking"}},
		{CourseID: "DB360", Title: "Data Warehousing", Department: "Computer Science", SkillsTaught: []string{"sql", "etl"}},

		{CourseID: "MBA501", Title: "Managerial Economics", Department: "Business", SkillsTaught: []string{"economics"}},
		{CourseID: "MBA510", Title: "Corporate Finance", Department: "Business", SkillsTaught: []string{"finance"}},
		{CourseID: "MBA520", Title: "Marketing Management", Department: "Business", SkillsTaught: []string{"marketing"}},
		{CourseID: "MBA530", Title: "Operations Management", Department: "Business", SkillsTaught: []string{"operations"}},
		{CourseID: "MBA540", Title: "Business Analytics", Department: "Business", SkillsTaught: []string{"analytics", "sql"}},
		{CourseID: "MBA550", Title: "Negotiation", Department: "Business", SkillsTaught: []string{"negotiation"}},
		{CourseID: "MBA560", Title: "Product Strategy", Department: "Business", SkillsTaught: []string{"product roadmap", "stakeholder management"}},
		{CourseID: "MBA570", Title: "Leading Organizations", Department: "Business", SkillsTaught: []string{"leadership"}},
		{CourseID: "MBA690", Title: "MBA Capstone", Department: "Business", SkillsTaught: []string{"strategy"}},
	}
}

// TestDegreeImports returns the degree requirements matching
// TestCourseImports: BSCS (with mandatory and selection categories, an
// empty category, and a capstone) and an MBA program.
func TestDegreeImports() []catalog.DegreeImport {
	return []catalog.DegreeImport{
		{
			DegreeName:         "Bachelor of Science in Computer Science (BSCS)",
			DegreeAbbreviation: "BSCS",
			CreditsToGraduate:  120,
			CourseRequirements: []catalog.CategoryImport{
				{
					Category:        "Applied Core",
					CreditsRequired: 9,
					Courses:         refs("APP101", "APP103", "APP201"),
				},
				{
					Category:        "Computer Science Core",
					CreditsRequired: 20,
					Courses:         refs("CS250", "CS250L", "CS310", "CS311L", "CS320", "CS330", "CS350", "CS360"),
				},
				{
					Category:        "Mathematics",
					CreditsRequired: 6,
					Courses:         refs("MATH201", "MATH301"),
				},
				{
					Category:        "Advanced Electives",
					CreditsRequired: 9,
					Courses:         refs("CS410", "CS420", "CS430", "CS440", "CS450"),
				},
				{
					Category:        "Capstone",
					CreditsRequired: 3,
					Courses:         refs("CS494"),
				},
				{
					Category:        "Free Electives",
					CreditsRequired: 6,
					Courses:         nil,
					Notes:           "Any course outside the major counts.",
				},
			},
		},
		{
			DegreeName:         "Master of Business Administration (MBA)",
			DegreeAbbreviation: "MBA",
			CreditsToGraduate:  36,
			CourseRequirements: []catalog.CategoryImport{
				{
					Category:        "MBA Core",
					CreditsRequired: 12,
					Courses:         refs("MBA501", "MBA510", "MBA520", "MBA530"),
				},
				{
					Category:        "MBA Electives",
					CreditsRequired: 9,
					Courses:         refs("MBA540", "MBA550", "MBA560", "MBA570"),
				},
				{
					Category:        "Capstone",
					CreditsRequired: 3,
					Courses:         refs("MBA690"),
				},
			},
		},
	}
}

func refs(codes ...string) []catalog.CategoryCourseImport {
	out := make([]catalog.CategoryCourseImport, len(codes))
	for i, code := range codes {
		out[i] = catalog.CategoryCourseImport{Code: code}
	}
	return out
}

// NewTestStore builds a catalog store from the test fixtures.
func NewTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Build(TestCourseImports(), TestDegreeImports())
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return store
}
