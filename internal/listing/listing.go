// Package listing orders transcript records for display.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"gradecheck/internal/transcript"
)

// SortKey selects the primary ordering of a subject list.
type SortKey string

const (
	SortDate     SortKey = "date"
	SortCategory SortKey = "category"
	SortGrade    SortKey = "grade"
	SortName     SortKey = "name"
)

// Order is the direction applied to the primary ordering.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Options controls List.
type Options struct {
	Key   SortKey
	Order Order
	// HideFailed drops F grades and fail tokens.
	HideFailed bool
}

// DefaultOptions lists newest subjects first.
func DefaultOptions() Options {
	return Options{Key: SortDate, Order: Descending}
}

// ParseSortKey validates a sort key name. "genre" is accepted for category.
func ParseSortKey(value string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "date":
		return SortDate, nil
	case "category", "genre":
		return SortCategory, nil
	case "grade":
		return SortGrade, nil
	case "name", "subject":
		return SortName, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want date, category, grade, or name)", value)
	}
}

// ParseOrder validates a sort direction.
func ParseOrder(value string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want asc or desc)", value)
	}
}

// List returns a sorted copy of records. The input slice is left untouched.
func List(records []transcript.Record, opts Options) []transcript.Record {
	out := make([]transcript.Record, 0, len(records))
	for _, r := range records {
		if opts.HideFailed && r.Failed() {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j], opts.Key, opts.Order) < 0
	})
	return out
}

type comparator func(a, b transcript.Record) int

// cascades lists the comparisons tried for each key, in order. Each key
// falls through to the ones after it when its own comparison ties.
var cascades = map[SortKey][]comparator{
	SortDate:     {byPeriod, byCategory, byGradePoint, byName},
	SortCategory: {byCategory, byGradePoint, byName},
	SortGrade:    {byGradePoint, byName},
	SortName:     {byName},
}

// fallback breaks ties left by the primary cascade: oldest first, then
// category and name, then better grades first.
var fallback = []comparator{byPeriod, byCategory, byName, reverse(byGradePoint)}

// Compare orders two records for a subject list.
func Compare(a, b transcript.Record, key SortKey, order Order) int {
	chain, ok := cascades[key]
	if !ok {
		chain = cascades[SortDate]
	}
	for _, cmp := range chain {
		if c := cmp(a, b); c != 0 {
			if order == Descending {
				return -c
			}
			return c
		}
	}
	for _, cmp := range fallback {
		if c := cmp(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// byPeriod orders by acquisition year, then semester rank.
func byPeriod(a, b transcript.Record) int {
	return compareInt(a.Period().Key(), b.Period().Key())
}

func byCategory(a, b transcript.Record) int {
	return strings.Compare(a.Category, b.Category)
}

func byName(a, b transcript.Record) int {
	return strings.Compare(a.Subject, b.Subject)
}

func byGradePoint(a, b transcript.Record) int {
	pa, pb := a.GradePoint(), b.GradePoint()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

func reverse(cmp comparator) comparator {
	return func(a, b transcript.Record) int { return -cmp(a, b) }
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
