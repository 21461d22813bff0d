package filter

import (
	"fmt"
	"strings"

	"gradecheck/internal/transcript"
)

// Default bounds used when no window is selected.
const (
	UnboundedStartYear = 0
	UnboundedEndYear   = 10000
)

// Window is an inclusive acquisition-period range.
type Window struct {
	Start transcript.Period `json:"start"`
	End   transcript.Period `json:"end"`
}

// Unbounded returns the window used when the caller selects none.
func Unbounded() Window {
	return Window{
		Start: transcript.Period{Year: UnboundedStartYear, Semester: transcript.Spring},
		End:   transcript.Period{Year: UnboundedEndYear, Semester: transcript.Winter},
	}
}

// Empty reports whether the window is inverted and therefore excludes every
// record. Only the years are compared.
func (w Window) Empty() bool {
	return w.Start.Year > w.End.Year
}

// Contains reports whether the record's acquisition period lies inside the
// window.
//
// Boundary years compare semester ranks. With calendar bounds, a record whose
// semester is outside the calendar (rank 10) is inside at the start year,
// outside at the end year, and outside when start and end share its year.
func (w Window) Contains(r transcript.Record) bool {
	if w.Empty() {
		return false
	}
	year := r.Year
	rank := transcript.SemesterRank(r.Semester)
	startRank := w.Start.Rank()
	endRank := w.End.Rank()

	switch {
	case year > w.Start.Year && year < w.End.Year:
		return true
	case year == w.Start.Year && year == w.End.Year:
		return rank >= startRank && rank <= endRank
	case year == w.Start.Year && rank >= startRank:
		return true
	case year == w.End.Year && rank <= endRank:
		return true
	default:
		return false
	}
}

func (w Window) String() string {
	return fmt.Sprintf("%s .. %s", w.Start, w.End)
}

// ParseWindow builds a window from "YEAR[:SEMESTER]" bounds. A missing start
// semester means spring and a missing end semester means winter. Empty bounds
// fall back to the unbounded defaults.
func ParseWindow(from, to string) (Window, error) {
	w := Unbounded()
	if strings.TrimSpace(from) != "" {
		start, err := transcript.ParsePeriod(from, transcript.Spring)
		if err != nil {
			return Window{}, fmt.Errorf("window start: %w", err)
		}
		w.Start = start
	}
	if strings.TrimSpace(to) != "" {
		end, err := transcript.ParsePeriod(to, transcript.Winter)
		if err != nil {
			return Window{}, fmt.Errorf("window end: %w", err)
		}
		w.End = end
	}
	return w, nil
}
