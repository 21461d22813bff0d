package session

import (
	"github.com/google/uuid"

	"gradecheck/internal/filter"
	"gradecheck/internal/listing"
	"gradecheck/internal/stats"
	"gradecheck/internal/transcript"
)

// Report is every aggregate for the current snapshot under the current
// selection.
type Report struct {
	SnapshotID uuid.UUID               `json:"snapshot_id"`
	Source     string                  `json:"source"`
	Encoding   string                  `json:"encoding"`
	Window     string                  `json:"window"`
	Span       filter.Window           `json:"-"`
	Summary    stats.Summary           `json:"summary"`
	Breakdown  []stats.CategoryCredits `json:"breakdown"`
	Genres     []stats.CategoryGroup   `json:"genres"`
	Warnings   int                     `json:"warnings"`
}

// Evaluate recomputes the report from the current snapshot.
func (s *Session) Evaluate() (Report, error) {
	snap, sel, err := s.state()
	if err != nil {
		return Report{}, err
	}
	criteria := sel.Criteria()
	return Report{
		SnapshotID: snap.ID,
		Source:     snap.Source,
		Encoding:   snap.Encoding,
		Window:     criteria.EffectiveWindow().String(),
		Span:       stats.FullWindow(snap.Records),
		Summary:    stats.Summarize(snap.Records, criteria, s.opts.Policy),
		Breakdown:  stats.Breakdown(snap.Records, criteria),
		Genres:     stats.DiscoverGenres(snap.Records),
		Warnings:   len(snap.Warnings),
	}, nil
}

// Credits returns the credit total under the current selection.
func (s *Session) Credits(includeUnearned bool) (int, error) {
	snap, sel, err := s.state()
	if err != nil {
		return 0, err
	}
	return stats.TotalCredits(snap.Records, stats.Options{
		Criteria:        sel.Criteria(),
		IncludeUnearned: includeUnearned,
	}), nil
}

// GPA returns the grade-point average under the current selection. It is
// NaN when no graded credit is in scope.
func (s *Session) GPA() (float64, error) {
	snap, sel, err := s.state()
	if err != nil {
		return 0, err
	}
	return s.opts.Policy.Compute(snap.Records, sel.Criteria()), nil
}

// Genres returns the categories discovered in the whole snapshot. Genre
// discovery ignores the selection so every category stays selectable.
func (s *Session) Genres() ([]stats.CategoryGroup, error) {
	snap, _, err := s.state()
	if err != nil {
		return nil, err
	}
	return stats.DiscoverGenres(snap.Records), nil
}

// Subjects returns the selected records ordered for display.
func (s *Session) Subjects(opts listing.Options) ([]transcript.Record, error) {
	snap, sel, err := s.state()
	if err != nil {
		return nil, err
	}
	return listing.List(sel.Criteria().Apply(snap.Records), opts), nil
}
