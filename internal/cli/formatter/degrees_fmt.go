package formatter

import (
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/domain"
)

// FormatDegrees renders the degree programs as a summary table.
func FormatDegrees(degrees []domain.DegreeRequirement) string {
	rows := make([][]string, 0, len(degrees))
	for _, d := range degrees {
		rows = append(rows, []string{
			StyleBlue.Render(d.Abbreviation),
			d.DegreeName,
			fmt.Sprintf("%g", d.CreditsToGraduate),
			fmt.Sprintf("%d", len(d.Categories)),
		})
	}
	return RenderTable([]string{"ABBR", "DEGREE", "CREDITS", "CATEGORIES"}, rows)
}

// FormatDegree renders one degree program with its requirement categories.
func FormatDegree(d domain.DegreeRequirement) string {
	var b strings.Builder
	b.WriteString(Header(d.DegreeName))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s to graduate\n\n", Bold(fmt.Sprintf("%g credits", d.CreditsToGraduate))))

	for _, cat := range d.Categories {
		kind := Dim("selection")
		if cat.Mandatory() {
			kind = StyleGreen.Render("mandatory")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Bold(cat.Name),
			Dim(fmt.Sprintf("(%g credits required)", cat.CreditsRequired)),
			kind))

		for _, course := range cat.Courses {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleBlue.Render(course.CourseID),
				course.Title,
				Dim(fmt.Sprintf("%g cr", course.Credits))))
		}
		if len(cat.Courses) == 0 && cat.Notes != "" {
			b.WriteString("  " + Dim(cat.Notes) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCourses renders catalog search results.
func FormatCourses(courses []domain.CourseRecord) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			StyleBlue.Render(c.CourseID),
			c.Title,
			fmt.Sprintf("%g", c.Credits),
			Dim(strings.Join(c.SkillsTaught, ", ")),
		})
	}
	return RenderTable([]string{"COURSE", "TITLE", "CREDITS", "SKILLS"}, rows)
}
