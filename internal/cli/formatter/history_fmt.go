package formatter

import (
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/repository"
)

// FormatHistory renders persisted plan runs as a table, newest first.
func FormatHistory(records []*repository.PlanRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		planned := fmt.Sprintf("%g/%g", rec.PlannedCredits, rec.TargetCredits)
		if rec.PlannedCredits < rec.TargetCredits {
			planned = StyleYellow.Render(planned)
		}
		rows = append(rows, []string{
			Dim(shortID(rec.ID)),
			StyleBlue.Render(rec.Abbreviation),
			planned,
			fmt.Sprintf("%d", rec.Semesters),
			rec.Ranker,
			Dim(rec.CreatedAt.Format("2006-01-02 15:04")),
		})
	}
	return RenderTable([]string{"ID", "DEGREE", "CREDITS", "SEMESTERS", "RANKER", "CREATED"}, rows)
}

// FormatHistoryRecord renders one persisted plan run in full.
func FormatHistoryRecord(rec *repository.PlanRecord) string {
	var b strings.Builder
	b.WriteString(Dim("id: "+rec.ID) + "\n")
	b.WriteString(Dim("created: "+rec.CreatedAt.Format("2006-01-02 15:04:05")) + "\n")
	b.WriteString(Dim("ranker: "+rec.Ranker) + "\n\n")
	b.WriteString(FormatPlan(&planner.PlanResponse{
		DegreeName:     rec.DegreeName,
		Abbreviation:   rec.Abbreviation,
		Plans:          rec.Plans,
		TargetCredits:  rec.TargetCredits,
		PlannedCredits: rec.PlannedCredits,
		Warnings:       rec.Warnings,
	}))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
