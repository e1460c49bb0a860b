package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/rank"
)

// ElectiveCategory labels every course added by the filler.
const ElectiveCategory = "Elective"

const electiveReason = "Elective aligned with target role"

// ElectiveQuery derives the free-text query used to rank electives: the
// benchmark skills the student is still missing, or the plain relevance
// query when nothing is missing.
func ElectiveQuery(student domain.StudentContext) string {
	if missing := student.MissingSkills(); len(missing) > 0 {
		return strings.Join(missing, " ")
	}
	return RelevanceQuery(student)
}

// FillElectives tops up the required course list toward the student's
// remaining credit budget. Ranked candidates are taken in order; a course
// is added only when its credits fit the remaining gap. The pass runs
// once; when the ranking is exhausted before the gap closes, the plan is
// left short and the shortfall is returned for the caller to report.
func FillElectives(
	ctx context.Context,
	ranker rank.Ranker,
	student domain.StudentContext,
	required []domain.PlannedCourse,
	requiredCredits float64,
	picked map[string]bool,
) ([]domain.PlannedCourse, float64, error) {
	gap := student.CreditsRemaining - requiredCredits
	if gap <= 0 {
		return required, 0, nil
	}

	ranked, err := ranker.Rank(ctx, ElectiveQuery(student), electiveRankDepth)
	if err != nil {
		return nil, 0, fmt.Errorf("ranking electives: %w", err)
	}

	courses := required
	for _, course := range ranked {
		if gap <= 0 {
			break
		}
		if course.CourseID == "" || picked[course.CourseID] {
			continue
		}
		if course.Credits > gap {
			continue
		}
		courses = append(courses, projectCourse(course, ElectiveCategory, electiveReason))
		picked[course.CourseID] = true
		gap -= course.Credits
	}

	return courses, gap, nil
}
