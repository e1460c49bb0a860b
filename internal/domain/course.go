package domain

// CourseRecord is a single catalog entry. Records are loaded once at
// startup and treated as immutable for the process lifetime.
type CourseRecord struct {
	CourseID      string
	Title         string
	Department    string
	Credits       float64
	Description   string
	SkillsTaught  []string
	Prerequisites []string
	Schedule      string
}

// RequirementCategory is a named group of courses with a minimum credit
// total needed to satisfy it. It belongs to exactly one DegreeRequirement.
type RequirementCategory struct {
	Name            string
	CreditsRequired float64
	Courses         []CourseRecord
	Notes           string
}

// ListedCredits returns the sum of credits across all courses listed in
// the category, regardless of completion.
func (c RequirementCategory) ListedCredits() float64 {
	var total float64
	for _, course := range c.Courses {
		total += course.Credits
	}
	return total
}

// Mandatory reports whether every listed course is needed to satisfy the
// category. The comparison uses actual summed credits rather than a
// fixed per-course assumption so 1-credit labs are counted correctly.
func (c RequirementCategory) Mandatory() bool {
	return c.CreditsRequired >= c.ListedCredits()
}

// DegreeRequirement describes one offered degree: its categories in
// declaration order and the credit total needed to graduate.
type DegreeRequirement struct {
	DegreeName        string
	Abbreviation      string
	CreditsToGraduate float64
	Categories        []RequirementCategory
}

// Level classifies the degree from its name prefix.
func (d DegreeRequirement) Level() DegreeLevel {
	return LevelFromDegreeName(d.DegreeName)
}
