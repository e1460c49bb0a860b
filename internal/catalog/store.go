package catalog

import (
	"errors"
	"fmt"

	"github.com/uniflowhq/uniflow/internal/domain"
)

const defaultCredits = 3

var (
	// ErrDegreeNotFound indicates the requested degree name is not in the catalog.
	ErrDegreeNotFound = errors.New("degree not found in catalog")

	// ErrCourseNotFound indicates the requested course id is not in the catalog.
	ErrCourseNotFound = errors.New("course not found in catalog")
)

// Store holds the course catalog and degree requirements. It is built once
// and immutable afterwards, so concurrent reads need no locking.
type Store struct {
	courses   []domain.CourseRecord
	byID      map[string]int
	degrees   map[string]domain.DegreeRequirement
	degreeSeq []string
}

// Load reads, validates, and converts both catalog documents.
// Any validation error aborts the load; the store never serves partial data.
func Load(coursesPath, requirementsPath string) (*Store, error) {
	courseImports, err := LoadCourseImports(coursesPath)
	if err != nil {
		return nil, fmt.Errorf("loading course catalog: %w", err)
	}
	degreeImports, err := LoadDegreeImports(requirementsPath)
	if err != nil {
		return nil, fmt.Errorf("loading degree requirements: %w", err)
	}
	return Build(courseImports, degreeImports)
}

// Build validates the parsed documents and assembles a Store.
func Build(courseImports []CourseImport, degreeImports []DegreeImport) (*Store, error) {
	if errs := ValidateImports(courseImports, degreeImports); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed with %d error(s), first: %w", len(errs), errs[0])
	}

	s := &Store{
		byID:    make(map[string]int, len(courseImports)),
		degrees: make(map[string]domain.DegreeRequirement, len(degreeImports)),
	}

	for _, ci := range courseImports {
		credits := float64(defaultCredits)
		if ci.Credits != nil {
			credits = *ci.Credits
		}
		s.byID[ci.CourseID] = len(s.courses)
		s.courses = append(s.courses, domain.CourseRecord{
			CourseID:      ci.CourseID,
			Title:         ci.Title,
			Department:    ci.Department,
			Credits:       credits,
			Description:   ci.Description,
			SkillsTaught:  ci.SkillsTaught,
			Prerequisites: ci.Prerequisites,
			Schedule:      ci.Schedule,
		})
	}

	for _, di := range degreeImports {
		categories := make([]domain.RequirementCategory, 0, len(di.CourseRequirements))
		for _, cat := range di.CourseRequirements {
			listed := make([]domain.CourseRecord, 0, len(cat.Courses))
			for _, ref := range cat.Courses {
				course, _ := s.CourseByID(ref.Code)
				listed = append(listed, course)
			}
			categories = append(categories, domain.RequirementCategory{
				Name:            cat.Category,
				CreditsRequired: cat.CreditsRequired,
				Courses:         listed,
				Notes:           cat.Notes,
			})
		}
		s.degrees[di.DegreeName] = domain.DegreeRequirement{
			DegreeName:        di.DegreeName,
			Abbreviation:      di.DegreeAbbreviation,
			CreditsToGraduate: di.CreditsToGraduate,
			Categories:        categories,
		}
		s.degreeSeq = append(s.degreeSeq, di.DegreeName)
	}

	return s, nil
}

// LookupDegree returns the requirements for an exact degree name.
func (s *Store) LookupDegree(name string) (domain.DegreeRequirement, error) {
	d, ok := s.degrees[name]
	if !ok {
		return domain.DegreeRequirement{}, fmt.Errorf("%w: %q", ErrDegreeNotFound, name)
	}
	return d, nil
}

// Degrees returns all degree requirements in catalog order.
func (s *Store) Degrees() []domain.DegreeRequirement {
	out := make([]domain.DegreeRequirement, 0, len(s.degreeSeq))
	for _, name := range s.degreeSeq {
		out = append(out, s.degrees[name])
	}
	return out
}

// CourseByID returns the catalog record for a course id.
func (s *Store) CourseByID(id string) (domain.CourseRecord, error) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.CourseRecord{}, fmt.Errorf("%w: %q", ErrCourseNotFound, id)
	}
	return s.courses[idx], nil
}

// Courses returns all catalog records in file order. The slice is a copy;
// callers may reorder it freely.
func (s *Store) Courses() []domain.CourseRecord {
	out := make([]domain.CourseRecord, len(s.courses))
	copy(out, s.courses)
	return out
}

// Position returns the catalog index of a course id, used as the stable
// tie-break when rankers produce equal scores. Unknown ids sort last.
func (s *Store) Position(id string) int {
	if idx, ok := s.byID[id]; ok {
		return idx
	}
	return len(s.courses)
}
