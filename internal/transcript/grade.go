package transcript

import (
	"strings"

	"golang.org/x/text/width"
)

// Letter grades, full-width as printed by the registrar.
const (
	GradeS = "Ｓ"
	GradeA = "Ａ"
	GradeB = "Ｂ"
	GradeC = "Ｃ"
	GradeF = "Ｆ"
)

// Pass/fail tokens. They appear in the status column and, for subjects graded
// only pass/fail, in the grade column too.
const (
	StatusPass       = "合"
	StatusFail       = "否"
	StatusRecognized = "認"
)

// PassFailTokens lists the tokens that mark a subject without a letter grade.
func PassFailTokens() []string {
	return []string{StatusPass, StatusFail, StatusRecognized}
}

// NormalizeGrade folds half-width letters into the registrar's full-width
// alphabet. Other tokens pass through unchanged.
func NormalizeGrade(grade string) string {
	return width.Widen.String(strings.TrimSpace(grade))
}

// GradePoint maps a grade token to its grade point. It never fails: F,
// pass/fail tokens, and anything unrecognized are worth 0.
func GradePoint(grade string) float64 {
	switch NormalizeGrade(grade) {
	case GradeS:
		return 4
	case GradeA:
		return 3
	case GradeB:
		return 2
	case GradeC:
		return 1
	default:
		return 0
	}
}

// IsLetterGrade reports whether grade is a graded result rather than a
// pass/fail-only token.
func IsLetterGrade(grade string) bool {
	switch grade {
	case StatusPass, StatusFail, StatusRecognized:
		return false
	default:
		return true
	}
}

// IsEarnedStatus reports whether a status token counts as earned credit.
func IsEarnedStatus(status string) bool {
	return status == StatusPass || status == StatusRecognized
}
