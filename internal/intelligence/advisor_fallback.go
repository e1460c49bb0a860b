package intelligence

import (
	"fmt"
	"strings"
)

// DeterministicAdvice builds the plan narrative directly from trace data
// without using the LLM. Used as a fallback when Ollama is unavailable or
// when the LLM output fails validation.
func DeterministicAdvice(trace PlanTrace) *PlanAdvice {
	advice := &PlanAdvice{
		FocusSkills: trace.MissingSkills,
		Cautions:    trace.Warnings,
	}

	advice.SummaryShort = fmt.Sprintf("%s: %g of %g credits planned across %d semester(s).",
		trace.DegreeName, trace.PlannedCredits, trace.TargetCredits, len(trace.Semesters))

	var b strings.Builder
	b.WriteString(advice.SummaryShort)
	for _, sem := range trace.Semesters {
		fmt.Fprintf(&b, " %s carries %g credit(s) over %d course(s).",
			sem.Label, sem.Credits, len(sem.Courses))
	}
	if trace.PlannedCredits < trace.TargetCredits {
		fmt.Fprintf(&b, " The plan falls %g credit(s) short of the target; review elective options with an advisor.",
			trace.TargetCredits-trace.PlannedCredits)
	}
	if len(trace.MissingSkills) > 0 {
		fmt.Fprintf(&b, " Skills still to build: %s.", strings.Join(trace.MissingSkills, ", "))
	}
	advice.SummaryDetailed = b.String()

	return advice
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
