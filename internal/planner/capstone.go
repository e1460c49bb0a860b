package planner

import "github.com/uniflowhq/uniflow/internal/domain"

// capstoneByAbbreviation maps each degree abbreviation to its single
// terminal capstone course. Degrees without an entry have no capstone
// handling; their plans pack normally.
var capstoneByAbbreviation = map[string]string{
	"BSCS": "CS494",
	"BSSE": "SE490",
	"BSBA": "BUS495",
	"MSCS": "CS697",
	"MBA":  "MBA690",
}

// CapstoneID returns the capstone course id for a degree abbreviation.
func CapstoneID(abbreviation string) (string, bool) {
	id, ok := capstoneByAbbreviation[abbreviation]
	return id, ok
}

// SplitCapstone separates the capstone course from the resolved list so the
// greedy packer never places it mid-plan. Relative order of the remaining
// courses is preserved. When the capstone is absent (already completed, or
// the abbreviation unmapped) the capstone bucket is simply empty.
func SplitCapstone(courses []domain.PlannedCourse, abbreviation string) (capstone, rest []domain.PlannedCourse) {
	capstoneID, ok := CapstoneID(abbreviation)
	if !ok {
		return nil, courses
	}

	rest = make([]domain.PlannedCourse, 0, len(courses))
	for _, course := range courses {
		if course.CourseID == capstoneID {
			capstone = append(capstone, course)
			continue
		}
		rest = append(rest, course)
	}
	return capstone, rest
}
