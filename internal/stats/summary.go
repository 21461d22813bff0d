package stats

import (
	"encoding/json"
	"math"
	"strconv"

	"gradecheck/internal/filter"
	"gradecheck/internal/transcript"
)

// YearSpan returns the smallest and largest acquisition year in records.
func YearSpan(records []transcript.Record) (int, int, bool) {
	if len(records) == 0 {
		return 0, 0, false
	}
	minYear, maxYear := records[0].Year, records[0].Year
	for _, r := range records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear, true
}

// FullWindow spans spring of the first acquisition year to winter of the last.
// An empty record set yields filter.Unbounded.
func FullWindow(records []transcript.Record) filter.Window {
	minYear, maxYear, ok := YearSpan(records)
	if !ok {
		return filter.Unbounded()
	}
	return filter.Window{
		Start: transcript.Period{Year: minYear, Semester: transcript.Spring},
		End:   transcript.Period{Year: maxYear, Semester: transcript.Winter},
	}
}

// Summary bundles the headline numbers for one selection.
type Summary struct {
	GPA              float64 `json:"-"`
	GradePoints      float64 `json:"grade_points"`
	GradedCredits    int     `json:"graded_credits"`
	EarnedCredits    int     `json:"earned_credits"`
	AttemptedCredits int     `json:"attempted_credits"`
	Records          int     `json:"records"`
}

// HasGPA reports whether the GPA is defined.
func (s Summary) HasGPA() bool {
	return s.GradedCredits > 0
}

// Summarize computes the headline numbers for records under criteria.
func Summarize(records []transcript.Record, criteria filter.Criteria, policy GPAPolicy) Summary {
	points, graded := policy.Totals(records, criteria)
	summary := Summary{
		GPA:              policy.Compute(records, criteria),
		GradePoints:      points,
		GradedCredits:    graded,
		EarnedCredits:    EarnedCredits(records, criteria),
		AttemptedCredits: AttemptedCredits(records, criteria),
	}
	for _, r := range records {
		if criteria.Match(r) {
			summary.Records++
		}
	}
	return summary
}

// MarshalJSON renders an undefined GPA as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	type plain Summary
	var gpa *float64
	if !math.IsNaN(s.GPA) {
		value := s.GPA
		gpa = &value
	}
	return json.Marshal(struct {
		GPA *float64 `json:"gpa"`
		plain
	}{GPA: gpa, plain: plain(s)})
}

// NoGPA is displayed in place of an undefined GPA.
const NoGPA = "—"

// FormatGPA renders a GPA with two decimals, or NoGPA when it is NaN.
func FormatGPA(gpa float64) string {
	if math.IsNaN(gpa) {
		return NoGPA
	}
	return strconv.FormatFloat(gpa, 'f', 2, 64)
}
