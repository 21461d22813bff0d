package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Semester tokens as they appear in the export.
const (
	Spring = "春学期"
	Summer = "夏学期"
	Fall   = "秋学期"
	Winter = "冬学期"
)

// OtherRank is the rank of any semester token outside the four-term calendar.
// It sorts after winter within the same year.
const OtherRank = 10

// SemesterRank maps a semester token to its position in the academic year.
// Unknown tokens, including the empty string, rank as OtherRank.
func SemesterRank(semester string) int {
	switch semester {
	case Spring:
		return 1
	case Summer:
		return 2
	case Fall:
		return 3
	case Winter:
		return 4
	default:
		return OtherRank
	}
}

// Semesters returns the four calendar tokens in rank order.
func Semesters() []string {
	return []string{Spring, Summer, Fall, Winter}
}

var semesterAliases = map[string]string{
	"spring": Spring,
	"summer": Summer,
	"fall":   Fall,
	"autumn": Fall,
	"winter": Winter,
	"春":      Spring,
	"夏":      Summer,
	"秋":      Fall,
	"冬":      Winter,
	"1":      Spring,
	"2":      Summer,
	"3":      Fall,
	"4":      Winter,
}

// ParseSemester resolves user input to a canonical semester token. It accepts
// the export tokens themselves, English names, and the 1-4 rank numbers.
func ParseSemester(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case Spring, Summer, Fall, Winter:
		return trimmed, nil
	}
	if token, ok := semesterAliases[strings.ToLower(trimmed)]; ok {
		return token, nil
	}
	return "", fmt.Errorf("unknown semester %q (want spring, summer, fall, or winter)", value)
}

// SemesterLabel returns a short English label for a calendar token, or the
// token itself when it is outside the calendar.
func SemesterLabel(semester string) string {
	switch semester {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Fall:
		return "fall"
	case Winter:
		return "winter"
	default:
		return semester
	}
}

// Period is an acquisition year paired with a semester token.
type Period struct {
	Year     int    `json:"year"`
	Semester string `json:"semester"`
}

// Rank is the semester rank of the period.
func (p Period) Rank() int {
	return SemesterRank(p.Semester)
}

// Key folds the period into a single comparable integer. Unknown semesters
// push the key past winter of the same year.
func (p Period) Key() int {
	return p.Year*10 + p.Rank()
}

// Compare orders periods by year then semester rank.
func (p Period) Compare(other Period) int {
	switch {
	case p.Year < other.Year:
		return -1
	case p.Year > other.Year:
		return 1
	}
	a, b := p.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (p Period) String() string {
	return strconv.Itoa(p.Year) + " " + p.Semester
}

// ParsePeriod parses "YEAR" or "YEAR:SEMESTER" (also "/" or space separated).
// When the semester part is missing, fallback is used.
func ParsePeriod(value, fallback string) (Period, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Period{}, fmt.Errorf("period is empty")
	}
	yearPart, semPart := trimmed, ""
	if idx := strings.IndexAny(trimmed, ":/ "); idx >= 0 {
		yearPart, semPart = trimmed[:idx], strings.TrimSpace(trimmed[idx+1:])
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil {
		return Period{}, fmt.Errorf("invalid year in period %q", value)
	}
	semester := fallback
	if semPart != "" {
		semester, err = ParseSemester(semPart)
		if err != nil {
			return Period{}, err
		}
	}
	return Period{Year: year, Semester: semester}, nil
}
