package formatter

import (
	"strings"

	"github.com/uniflowhq/uniflow/internal/intelligence"
)

// FormatBenchmark renders an analyzed skill benchmark.
func FormatBenchmark(benchmark *intelligence.SkillBenchmark) string {
	var b strings.Builder
	b.WriteString(Header("Target Position"))
	b.WriteString("\n")
	b.WriteString(Bold(benchmark.Position))
	if benchmark.Seniority != "" {
		b.WriteString(" " + Dim("("+benchmark.Seniority+")"))
	}
	b.WriteString("\n")
	b.WriteString(Dim("benchmark skills: ") + StyleBlue.Render(strings.Join(benchmark.Skills, ", ")))
	b.WriteString("\n")
	return b.String()
}

// FormatAdvice renders the advisor narrative for a resolved plan.
func FormatAdvice(advice *intelligence.PlanAdvice) string {
	var b strings.Builder
	b.WriteString(Header("Advisor Notes"))
	b.WriteString("\n")
	b.WriteString(Bold(advice.SummaryShort) + "\n")
	if advice.SummaryDetailed != "" {
		b.WriteString(advice.SummaryDetailed + "\n")
	}
	if len(advice.FocusSkills) > 0 {
		b.WriteString(Dim("focus skills: ") + StyleBlue.Render(strings.Join(advice.FocusSkills, ", ")) + "\n")
	}
	for _, caution := range advice.Cautions {
		b.WriteString(Warning(caution) + "\n")
	}
	return b.String()
}
