package formatter

import (
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/planner"
)

// FormatPlan renders a resolved study plan as a styled multi-semester view.
func FormatPlan(resp *planner.PlanResponse) string {
	var b strings.Builder

	title := resp.DegreeName
	if title == "" {
		title = "Study Plan"
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(resp.Plans) == 0 {
		b.WriteString(Dim("No semesters planned.") + "\n")
	}

	for _, semester := range resp.Plans {
		label := semester.SemesterLabel
		if semester.IsFinal {
			label = StyleGreen.Render(label)
		} else {
			label = Bold(label)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, Dim(fmt.Sprintf("(%g credits)", semester.TotalCredits))))

		rows := make([][]string, 0, len(semester.Courses))
		for _, course := range semester.Courses {
			rows = append(rows, []string{
				StyleBlue.Render(course.CourseID),
				course.Title,
				fmt.Sprintf("%g", course.Credits),
				Dim(course.Category),
			})
		}
		b.WriteString(RenderTable([]string{"COURSE", "TITLE", "CREDITS", "CATEGORY"}, rows))
		b.WriteString("\n")
	}

	planned := fmt.Sprintf("%g", resp.PlannedCredits)
	if resp.PlannedCredits < resp.TargetCredits {
		planned = StyleYellow.Render(planned)
	} else {
		planned = StyleGreen.Render(planned)
	}
	b.WriteString(fmt.Sprintf("Planned credits: %s of %g\n", planned, resp.TargetCredits))

	for _, warning := range resp.Warnings {
		b.WriteString(Warning(warning) + "\n")
	}
	return b.String()
}
