package stats

import (
	"math"

	"gradecheck/internal/filter"
	"gradecheck/internal/transcript"
)

// CrossDepartmentSubcategory holds subjects taken outside the student's own
// department and teaching-licence subjects. They never count toward GPA.
const CrossDepartmentSubcategory = "他学科・専攻・教免等科目"

// GPAPolicy extends the fixed GPA exclusions.
type GPAPolicy struct {
	// ExtraExcludedSubcategories are dropped from GPA in addition to
	// CrossDepartmentSubcategory.
	ExtraExcludedSubcategories []string
}

func (p GPAPolicy) excludedSubcategories() []string {
	out := []string{CrossDepartmentSubcategory}
	for _, s := range p.ExtraExcludedSubcategories {
		if s != CrossDepartmentSubcategory {
			out = append(out, s)
		}
	}
	return out
}

func (p GPAPolicy) eligible(r transcript.Record) bool {
	for _, s := range p.excludedSubcategories() {
		if r.Subcategory == s {
			return false
		}
	}
	return transcript.IsLetterGrade(r.Grade)
}

// ComputeGPA returns the credit-weighted grade-point average of the matching
// letter-graded records, truncated to two decimals. Failed attempts count in
// the denominator. It returns NaN when no credit is eligible.
func ComputeGPA(records []transcript.Record, criteria filter.Criteria) float64 {
	return GPAPolicy{}.Compute(records, criteria)
}

// Compute is ComputeGPA under the policy's exclusions.
func (p GPAPolicy) Compute(records []transcript.Record, criteria filter.Criteria) float64 {
	points, credits := p.Totals(records, criteria)
	if credits == 0 {
		return math.NaN()
	}
	return TruncateTo(points/float64(credits), 100)
}

// Totals returns the GPA numerator (sum of credit times grade point) and
// denominator (attempted graded credit).
func (p GPAPolicy) Totals(records []transcript.Record, criteria filter.Criteria) (float64, int) {
	window := criteria.EffectiveWindow()
	var points float64
	for _, r := range records {
		if !p.eligible(r) {
			continue
		}
		if !window.Contains(r) || !criteria.Include.Allows(r) || criteria.Exclude.Rejects(r) {
			continue
		}
		if r.Credit > 0 {
			points += float64(r.Credit) * r.GradePoint()
		}
	}

	denominator := Options{
		Criteria: filter.Criteria{
			Window:  criteria.Window,
			Include: criteria.Include,
			Exclude: criteria.Exclude.
				With(filter.AttrGrade, transcript.PassFailTokens()...).
				With(filter.AttrSubcategory, p.excludedSubcategories()...),
		},
		IncludeUnearned: true,
	}
	return points, TotalCredits(records, denominator)
}

// TruncateTo drops everything past 1/base, rounding toward negative infinity.
func TruncateTo(value, base float64) float64 {
	return math.Floor(value*base) / base
}
