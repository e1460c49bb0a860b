package domain

import "strings"

type DegreeLevel string

const (
	LevelBachelor DegreeLevel = "bachelor"
	LevelMaster   DegreeLevel = "master"
	LevelMBA      DegreeLevel = "mba"
)

// Per-level planning constants.
const (
	BachelorCreditCeiling = 120
	GraduateCreditCeiling = 36

	BachelorMinSemesterCredits = 12
	GraduateMinSemesterCredits = 9
)

// LevelFromDegreeName classifies a degree by its name prefix, e.g.
// "Bachelor of Science in Computer Science (BSCS)" -> LevelBachelor.
// Unrecognized prefixes default to bachelor.
func LevelFromDegreeName(name string) DegreeLevel {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(lower, "master"):
		return LevelMaster
	case strings.HasPrefix(lower, "mba"), strings.HasPrefix(lower, "executive mba"):
		return LevelMBA
	default:
		return LevelBachelor
	}
}

// CreditCeiling returns the maximum credits_remaining accepted for the level.
func (l DegreeLevel) CreditCeiling() float64 {
	if l.Graduate() {
		return GraduateCreditCeiling
	}
	return BachelorCreditCeiling
}

// MinSemesterCredits returns the per-semester minimum credit load used
// when packing semesters for the level.
func (l DegreeLevel) MinSemesterCredits() float64 {
	if l.Graduate() {
		return GraduateMinSemesterCredits
	}
	return BachelorMinSemesterCredits
}

// Graduate reports whether the level is a master's or MBA program.
func (l DegreeLevel) Graduate() bool {
	return l == LevelMaster || l == LevelMBA
}
