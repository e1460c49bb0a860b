package domain

// PlannedCourse is a projection of a catalog record into a study plan.
// Generated fresh on every resolution, never stored back to the catalog.
type PlannedCourse struct {
	CourseID        string   `json:"course_id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Credits         float64  `json:"credits"`
	RelevanceReason string   `json:"relevance_reason"`
	SkillsCovered   []string `json:"skills_covered"`
	Schedule        string   `json:"schedule"`
}

// SemesterPlan is one semester bucket of a resolved study plan.
// Immutable after assembly.
type SemesterPlan struct {
	SemesterLabel string          `json:"semester_label"`
	Courses       []PlannedCourse `json:"courses"`
	TotalCredits  float64         `json:"total_credits"`
	IsFinal       bool            `json:"is_final"`
}

// PlanCredits sums course credits across all semesters.
func PlanCredits(plans []SemesterPlan) float64 {
	var total float64
	for _, p := range plans {
		total += p.TotalCredits
	}
	return total
}
