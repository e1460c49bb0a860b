package intelligence

import "strings"

// roleSkills maps role keywords to the benchmark skills taught for that
// family of positions. Checked in order; the first hit wins.
var roleSkills = []struct {
	keywords []string
	skills   []string
}{
	{[]string{"machine learning", "ml engineer", "ai "}, []string{"machine learning", "python", "statistics", "data structures"}},
	{[]string{"security", "penetration"}, []string{"security", "networking", "systems programming"}},
	{[]string{"data engineer", "data scientist", "analyst", "analytics"}, []string{"sql", "python", "data modeling", "statistics"}},
	{[]string{"frontend", "front-end", "web"}, []string{"javascript", "html", "software design"}},
	{[]string{"devops", "sre", "site reliability", "platform"}, []string{"networking", "systems programming", "distributed systems"}},
	{[]string{"product manager", "business", "marketing", "finance"}, []string{"analytics", "negotiation", "stakeholder management"}},
}

var defaultSkills = []string{"data structures", "algorithms", "software design", "sql"}

// DeterministicBenchmark builds a skill benchmark from keyword matching
// alone. Used as a fallback when the LLM is unavailable or its output
// fails validation.
func DeterministicBenchmark(position string) *SkillBenchmark {
	lower := strings.ToLower(position)

	benchmark := &SkillBenchmark{
		Position:  strings.TrimSpace(position),
		Seniority: seniorityFromTitle(lower),
		Skills:    defaultSkills,
	}
	for _, role := range roleSkills {
		for _, kw := range role.keywords {
			if strings.Contains(lower, kw) {
				benchmark.Skills = role.skills
				return benchmark
			}
		}
	}
	return benchmark
}

func seniorityFromTitle(lower string) string {
	switch {
	case strings.Contains(lower, "senior"), strings.Contains(lower, "lead"),
		strings.Contains(lower, "principal"), strings.Contains(lower, "staff"):
		return "senior"
	case strings.Contains(lower, "junior"), strings.Contains(lower, "entry"),
		strings.Contains(lower, "intern"):
		return "junior"
	default:
		return "mid"
	}
}
