package planner

import (
	"errors"
	"fmt"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// ErrInvalidRequest marks user-correctable input problems, raised before
// any catalog or ranking work begins. Distinct from retryable ranking
// faults (rank.ErrUnavailable).
var ErrInvalidRequest = errors.New("invalid planning request")

// PlanRequest is one planning request from the orchestrating caller.
type PlanRequest struct {
	DegreeName         string   `json:"degree_name"`
	CompletedCourseIDs []string `json:"completed_course_ids"`
	CreditsRemaining   float64  `json:"credits_remaining"`
	SkillBenchmark     []string `json:"skill_benchmark"`
	StudentSkills      []string `json:"student_skills"`
}

// Validate checks the request against the credit ceiling for the declared
// degree level. The level comes from the degree name prefix alone, so
// validation never touches the catalog.
func (r PlanRequest) Validate() error {
	if r.DegreeName == "" {
		return fmt.Errorf("%w: degree_name is required", ErrInvalidRequest)
	}
	if r.CreditsRemaining <= 0 {
		return fmt.Errorf("%w: credits_remaining must be positive, got %g", ErrInvalidRequest, r.CreditsRemaining)
	}

	level := domain.LevelFromDegreeName(r.DegreeName)
	if ceiling := level.CreditCeiling(); r.CreditsRemaining > ceiling {
		return fmt.Errorf("%w: credits_remaining %g exceeds the %s ceiling of %g",
			ErrInvalidRequest, r.CreditsRemaining, level, ceiling)
	}
	return nil
}

// Student converts the request into the per-request student context.
func (r PlanRequest) Student() domain.StudentContext {
	completed := make(map[string]bool, len(r.CompletedCourseIDs))
	for _, id := range r.CompletedCourseIDs {
		completed[id] = true
	}
	return domain.StudentContext{
		EnrolledDegree:     r.DegreeName,
		CompletedCourseIDs: completed,
		CreditsRemaining:   r.CreditsRemaining,
		SkillBenchmark:     r.SkillBenchmark,
		StudentSkills:      r.StudentSkills,
	}
}

// PlanResponse is the resolved study plan. An unrecognized degree yields an
// empty plan list with a warning rather than an error; an under-filled
// elective gap is likewise reported, not hidden; callers can also compare
// PlannedCredits against TargetCredits.
type PlanResponse struct {
	DegreeName     string                `json:"degree_name"`
	Abbreviation   string                `json:"degree_abbreviation,omitempty"`
	Plans          []domain.SemesterPlan `json:"plans"`
	TargetCredits  float64               `json:"target_credits"`
	PlannedCredits float64               `json:"planned_credits"`
	Warnings       []string              `json:"warnings,omitempty"`
}
