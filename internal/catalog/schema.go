package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// CourseImport is the JSON shape of one record in the courses document.
type CourseImport struct {
	CourseID      string   `json:"course_id"`
	Title         string   `json:"title"`
	Department    string   `json:"department"`
	Credits       *float64 `json:"credits,omitempty"`
	Description   string   `json:"description,omitempty"`
	SkillsTaught  []string `json:"skills_taught,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Schedule      string   `json:"schedule,omitempty"`
}

// CategoryImport is the JSON shape of one requirement category.
type CategoryImport struct {
	Category        string                 `json:"category"`
	CreditsRequired float64                `json:"credits_required"`
	Courses         []CategoryCourseImport `json:"courses"`
	Notes           string                 `json:"notes,omitempty"`
}

// CategoryCourseImport references a catalog course from a category by code.
type CategoryCourseImport struct {
	Code string `json:"code"`
}

// DegreeImport is the JSON shape of one record in the requirements document.
type DegreeImport struct {
	DegreeName         string           `json:"degree_name"`
	DegreeAbbreviation string           `json:"degree_abbreviation"`
	CreditsToGraduate  float64          `json:"credits_to_graduate"`
	CourseRequirements []CategoryImport `json:"course_requirements"`
}

// LoadCourseImports reads and parses the courses JSON document.
func LoadCourseImports(path string) ([]CourseImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var courses []CourseImport
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("parsing courses file: %w", err)
	}
	return courses, nil
}

// LoadDegreeImports reads and parses the degree requirements JSON document.
func LoadDegreeImports(path string) ([]DegreeImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var degrees []DegreeImport
	if err := json.Unmarshal(data, &degrees); err != nil {
		return nil, fmt.Errorf("parsing requirements file: %w", err)
	}
	return degrees, nil
}
