package planner

import (
	"math"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// PackSemesters distributes the resolved course list across semester
// buckets in a single left-to-right greedy pass. A bucket closes once its
// accumulated credits reach minPerSemester, except the last bucket, which
// absorbs all overflow plus the capstone. There is no backtracking and no
// rebalancing.
func PackSemesters(
	nonCapstone []domain.PlannedCourse,
	capstone []domain.PlannedCourse,
	creditsRemaining float64,
	minPerSemester float64,
) [][]domain.PlannedCourse {
	n := 1
	if minPerSemester > 0 {
		n = int(math.Ceil(creditsRemaining / minPerSemester))
		if n < 1 {
			n = 1
		}
	}

	buckets := make([][]domain.PlannedCourse, n)
	credits := make([]float64, n)

	current := 0
	for _, course := range nonCapstone {
		buckets[current] = append(buckets[current], course)
		credits[current] += course.Credits
		if credits[current] >= minPerSemester && current < n-1 {
			current++
		}
	}

	// The capstone always lands in the last semester, whatever its total.
	buckets[n-1] = append(buckets[n-1], capstone...)

	return buckets
}
