package domain

import "strings"

// StudentContext carries everything known about one student for a single
// planning request. It is built per request and never persisted as-is.
type StudentContext struct {
	EnrolledDegree     string
	CompletedCourseIDs map[string]bool
	CreditsRemaining   float64
	SkillBenchmark     []string
	StudentSkills      []string
}

// Completed reports whether the student has already taken the course.
func (s StudentContext) Completed(courseID string) bool {
	return s.CompletedCourseIDs[courseID]
}

// MissingSkills returns the benchmark skills the student does not yet
// have, compared case-insensitively, in benchmark order.
func (s StudentContext) MissingSkills() []string {
	have := make(map[string]bool, len(s.StudentSkills))
	for _, skill := range s.StudentSkills {
		have[strings.ToLower(skill)] = true
	}
	var missing []string
	for _, skill := range s.SkillBenchmark {
		if !have[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}
