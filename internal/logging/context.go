package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSnapshotID identifies the loaded transcript snapshot.
	FieldSnapshotID = "snapshot_id"
	// FieldSource is the file or stream a transcript was read from.
	FieldSource = "source"
	// FieldEncoding is the resolved character encoding of an input.
	FieldEncoding = "encoding"
	// FieldLine is a 1-based input line number.
	FieldLine = "line"
	// FieldEventType classifies a log event for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

type snapshotKey struct{}

// WithSnapshotID stores the snapshot identifier on ctx.
func WithSnapshotID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, snapshotKey{}, id)
}

// SnapshotIDFromContext returns the snapshot identifier stored on ctx.
func SnapshotIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(snapshotKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if id, ok := SnapshotIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSnapshotID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
