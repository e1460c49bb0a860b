// Package intelligence hosts the advisory services that sit on top of the
// planning engine: position analysis (free text -> skill benchmark) and the
// plan narrative. Every service degrades to a deterministic fallback when
// the LLM is unreachable or returns output that fails validation, so the
// planner pipeline never depends on model availability.
package intelligence

import (
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/planner"
)

// SkillBenchmark is the structured profile derived from a target position.
type SkillBenchmark struct {
	Position  string   `json:"position"`
	Seniority string   `json:"seniority"`
	Skills    []string `json:"skills"`
}

// ValidateBenchmark rejects benchmarks that cannot drive a ranking query.
func ValidateBenchmark(b SkillBenchmark) error {
	if strings.TrimSpace(b.Position) == "" {
		return fmt.Errorf("position is required")
	}
	if len(b.Skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}
	if len(b.Skills) > 20 {
		return fmt.Errorf("too many skills: %d", len(b.Skills))
	}
	for _, s := range b.Skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("empty skill entry")
		}
	}
	return nil
}

// NormalizeBenchmark lowercases and deduplicates skills, preserving order.
func NormalizeBenchmark(b *SkillBenchmark) {
	seen := make(map[string]bool, len(b.Skills))
	out := b.Skills[:0]
	for _, s := range b.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	b.Skills = out
	b.Seniority = strings.ToLower(strings.TrimSpace(b.Seniority))
}

// SemesterSummary is the per-semester slice of a PlanTrace.
type SemesterSummary struct {
	Label   string   `json:"label"`
	Credits float64  `json:"credits"`
	Courses []string `json:"courses"`
}

// PlanTrace is the faithful input handed to the plan advisor: everything it
// says must be derivable from this structure.
type PlanTrace struct {
	DegreeName     string            `json:"degree_name"`
	Abbreviation   string            `json:"degree_abbreviation,omitempty"`
	TargetCredits  float64           `json:"target_credits"`
	PlannedCredits float64           `json:"planned_credits"`
	Semesters      []SemesterSummary `json:"semesters"`
	MissingSkills  []string          `json:"missing_skills,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
}

// NewPlanTrace projects a plan response into the advisor's input.
func NewPlanTrace(resp *planner.PlanResponse, missingSkills []string) PlanTrace {
	trace := PlanTrace{
		DegreeName:     resp.DegreeName,
		Abbreviation:   resp.Abbreviation,
		TargetCredits:  resp.TargetCredits,
		PlannedCredits: resp.PlannedCredits,
		MissingSkills:  missingSkills,
		Warnings:       resp.Warnings,
	}
	for _, plan := range resp.Plans {
		summary := SemesterSummary{Label: plan.SemesterLabel, Credits: plan.TotalCredits}
		for _, course := range plan.Courses {
			summary.Courses = append(summary.Courses, fmt.Sprintf("%s %s", course.CourseID, course.Title))
		}
		trace.Semesters = append(trace.Semesters, summary)
	}
	return trace
}

// PlanAdvice is the advisory narrative rendered over a resolved plan.
type PlanAdvice struct {
	SummaryShort    string   `json:"summary_short"`
	SummaryDetailed string   `json:"summary_detailed"`
	FocusSkills     []string `json:"focus_skills,omitempty"`
	Cautions        []string `json:"cautions,omitempty"`
}

// ValidateAdvice rejects advice without a usable summary.
func ValidateAdvice(a PlanAdvice) error {
	if strings.TrimSpace(a.SummaryShort) == "" {
		return fmt.Errorf("summary_short is required")
	}
	return nil
}
