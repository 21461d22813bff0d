// Package session holds the transcript currently under evaluation and the
// selection applied to it.
//
// A Session is the only stateful component in gradecheck. It owns one
// immutable Snapshot at a time, replaced wholesale by Load, and one Selection.
// Every query recomputes from the current snapshot through the pure filter,
// stats, and listing packages.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"gradecheck/internal/filter"
	"gradecheck/internal/ingest"
	"gradecheck/internal/logging"
	"gradecheck/internal/stats"
	"gradecheck/internal/transcript"
)

// ErrNoSnapshot is returned by queries issued before a transcript is loaded.
var ErrNoSnapshot = errors.New("no transcript loaded")

// Snapshot is one successfully imported transcript. It is never modified
// after Load returns it.
type Snapshot struct {
	ID       uuid.UUID             `json:"id"`
	Source   string                `json:"source"`
	Encoding string                `json:"encoding"`
	LoadedAt time.Time             `json:"loaded_at"`
	Records  []transcript.Record   `json:"-"`
	Warnings []ingest.ParseWarning `json:"-"`
}

// Selection is the window and attribute constraints chosen by the user.
type Selection struct {
	Window  *filter.Window
	Include filter.Constraints
	Exclude filter.Constraints
}

// Criteria converts the selection for the filter and stats packages.
func (s Selection) Criteria() filter.Criteria {
	return filter.Criteria{Window: s.Window, Include: s.Include, Exclude: s.Exclude}
}

// Options configures a Session.
type Options struct {
	// Encoding is passed to ingest; empty or "auto" detects it.
	Encoding string
	Policy   stats.GPAPolicy
}

// Session owns the current snapshot and selection.
type Session struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	opts      Options
	now       func() time.Time
	snapshot  *Snapshot
	selection Selection
}

// New creates an empty session.
func New(logger *slog.Logger, opts Options) *Session {
	return &Session{
		logger: logging.NewComponentLogger(logger, "session"),
		opts:   opts,
		now:    time.Now,
	}
}

// LoadFile reads path and loads it as the current transcript.
func (s *Session) LoadFile(ctx context.Context, path string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	return s.Load(ctx, path, data)
}

// Load parses data and, on success, replaces the current snapshot. On
// failure the previous snapshot stays in place.
func (s *Session) Load(ctx context.Context, source string, data []byte) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := ingest.Parse(data, ingest.Options{Encoding: s.opts.Encoding})
	if err != nil {
		logging.ErrorWithContext(s.logger, "transcript import failed", "ingest_failed",
			logging.String(logging.FieldSource, source),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "export the transcript again and pass it unmodified"),
		)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		Source:   source,
		Encoding: result.Encoding,
		LoadedAt: s.now(),
		Records:  result.Records,
		Warnings: result.Warnings,
	}

	logger := logging.WithContext(logging.WithSnapshotID(ctx, snap.ID.String()), s.logger)
	for _, w := range snap.Warnings {
		logging.WarnWithContext(logger, "transcript field coerced", "parse_warning",
			logging.Int(logging.FieldLine, w.Line),
			logging.String("field", w.Field),
			logging.String("value", w.Value),
			logging.String("reason", w.Reason),
			logging.String(logging.FieldImpact, "value counted as 0"),
		)
	}
	logger.Info("transcript loaded",
		logging.String(logging.FieldSource, source),
		logging.String(logging.FieldEncoding, snap.Encoding),
		logging.Int("records", len(snap.Records)),
		logging.Int("warnings", len(snap.Warnings)),
	)

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return snap, nil
}

// Current returns the loaded snapshot, if any.
func (s *Session) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Select replaces the current selection.
func (s *Session) Select(sel Selection) {
	s.mu.Lock()
	s.selection = sel
	s.mu.Unlock()
}

func (s *Session) state() (*Snapshot, Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, Selection{}, ErrNoSnapshot
	}
	return s.snapshot, s.selection, nil
}
