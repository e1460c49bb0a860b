package planner

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// TestPackSemesters_Invariants property-tests the packing invariants over
// randomized course lists: no course is lost or duplicated, input order is
// preserved, every bucket before the last closes at or above the semester
// floor, and the capstone only ever appears in the last bucket.
func TestPackSemesters_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		numCourses := rng.Intn(20)
		courses := make([]domain.PlannedCourse, numCourses)
		for i := range courses {
			credits := float64(rng.Intn(4) + 1) // 1–4 credits
			courses[i] = pcourse(fmt.Sprintf("C%03d", i), credits)
		}

		var capstone []domain.PlannedCourse
		if rng.Intn(2) == 1 {
			capstone = []domain.PlannedCourse{pcourse("CAP", 3)}
		}

		creditsRemaining := float64(rng.Intn(120) + 1)
		minPerSemester := float64(rng.Intn(12) + 6) // 6–17

		buckets := PackSemesters(courses, capstone, creditsRemaining, minPerSemester)

		wantBuckets := int(math.Ceil(creditsRemaining / minPerSemester))
		if wantBuckets < 1 {
			wantBuckets = 1
		}
		assert.Len(t, buckets, wantBuckets,
			"trial %d: bucket count must be ceil(%g/%g)", trial, creditsRemaining, minPerSemester)

		// Flattening the non-capstone portion must reproduce the input exactly.
		var flattened []domain.PlannedCourse
		for _, bucket := range buckets {
			for _, course := range bucket {
				if course.CourseID == "CAP" {
					continue
				}
				flattened = append(flattened, course)
			}
		}
		assert.Equal(t, courseIDs(courses), courseIDs(flattened),
			"trial %d: packing must neither drop, duplicate, nor reorder courses", trial)

		// Capstone placement: last bucket only.
		for j, bucket := range buckets[:len(buckets)-1] {
			for _, course := range bucket {
				assert.NotEqual(t, "CAP", course.CourseID,
					"trial %d: capstone leaked into bucket %d", trial, j)
			}
		}
		if len(capstone) > 0 {
			last := buckets[len(buckets)-1]
			assert.Equal(t, "CAP", last[len(last)-1].CourseID,
				"trial %d: capstone must close the final bucket", trial)
		}

		// Every closed bucket reached the floor. Only buckets the greedy
		// pass moved past count as closed: those followed by another bucket
		// holding regular (non-capstone) courses.
		lastRegular := -1
		for j, bucket := range buckets {
			for _, course := range bucket {
				if course.CourseID != "CAP" {
					lastRegular = j
					break
				}
			}
		}
		for j, bucket := range buckets {
			if j >= lastRegular || len(bucket) == 0 {
				continue
			}
			assert.GreaterOrEqual(t, bucketCredits(bucket), minPerSemester,
				"trial %d: bucket %d closed below the semester floor", trial, j)
		}
	}
}
