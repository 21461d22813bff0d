package stats

import (
	"gradecheck/internal/filter"
	"gradecheck/internal/transcript"
)

// Options scopes a credit total.
type Options struct {
	filter.Criteria
	// IncludeUnearned counts every matching record regardless of status. The
	// zero value counts only earned credit (pass or credit-recognized).
	IncludeUnearned bool
}

// TotalCredits sums credit over the records that pass every filter stage.
func TotalCredits(records []transcript.Record, opts Options) int {
	window := opts.EffectiveWindow()
	total := 0
	for _, r := range records {
		if !opts.IncludeUnearned && !r.Earned() {
			continue
		}
		if !window.Contains(r) || !opts.Include.Allows(r) || opts.Exclude.Rejects(r) {
			continue
		}
		if r.Credit > 0 {
			total += r.Credit
		}
	}
	return total
}

// EarnedCredits is TotalCredits restricted to earned records.
func EarnedCredits(records []transcript.Record, criteria filter.Criteria) int {
	return TotalCredits(records, Options{Criteria: criteria})
}

// AttemptedCredits is TotalCredits over every matching record.
func AttemptedCredits(records []transcript.Record, criteria filter.Criteria) int {
	return TotalCredits(records, Options{Criteria: criteria, IncludeUnearned: true})
}
