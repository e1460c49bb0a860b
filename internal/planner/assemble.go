package planner

import (
	"fmt"
	"math"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// AssemblePlans converts packed buckets into labeled semester plans.
// Empty buckets are dropped; the last non-empty bucket becomes the final
// semester.
func AssemblePlans(buckets [][]domain.PlannedCourse) []domain.SemesterPlan {
	var nonEmpty [][]domain.PlannedCourse
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			nonEmpty = append(nonEmpty, bucket)
		}
	}

	plans := make([]domain.SemesterPlan, 0, len(nonEmpty))
	for i, bucket := range nonEmpty {
		final := i == len(nonEmpty)-1

		label := fmt.Sprintf("Semester %d", i+1)
		if final {
			label = "Final Semester"
		}

		var total float64
		for _, course := range bucket {
			total += course.Credits
		}

		plans = append(plans, domain.SemesterPlan{
			SemesterLabel: label,
			Courses:       bucket,
			TotalCredits:  roundCredits(total),
			IsFinal:       final,
		})
	}
	return plans
}

// roundCredits clears float noise from summing fractional lab credits.
func roundCredits(credits float64) float64 {
	return math.Round(credits*100) / 100
}
