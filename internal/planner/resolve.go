package planner

import (
	"context"
	"fmt"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/rank"
)

// Resolve runs the full planning pipeline for one validated request:
// requirement resolution, elective fill, capstone isolation, semester
// packing, and plan assembly. It is a pure single pass: identical inputs
// and a deterministic ranker produce identical output.
func Resolve(
	ctx context.Context,
	degree domain.DegreeRequirement,
	student domain.StudentContext,
	ranker rank.Ranker,
) (*PlanResponse, error) {
	required, requiredCredits, picked, err := ResolveRequirements(ctx, degree, student, ranker)
	if err != nil {
		return nil, err
	}

	courses, shortfall, err := FillElectives(ctx, ranker, student, required, requiredCredits, picked)
	if err != nil {
		return nil, err
	}

	capstone, rest := SplitCapstone(courses, degree.Abbreviation)

	minPerSemester := degree.Level().MinSemesterCredits()
	buckets := PackSemesters(rest, capstone, student.CreditsRemaining, minPerSemester)
	plans := AssemblePlans(buckets)

	resp := &PlanResponse{
		DegreeName:     degree.DegreeName,
		Abbreviation:   degree.Abbreviation,
		Plans:          plans,
		TargetCredits:  student.CreditsRemaining,
		PlannedCredits: roundCredits(domain.PlanCredits(plans)),
	}
	if shortfall > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"elective gap of %g credit(s) could not be filled from the catalog; the plan is short of the %g-credit target",
			roundCredits(shortfall), student.CreditsRemaining))
	}
	return resp, nil
}
