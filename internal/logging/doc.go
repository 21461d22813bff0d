// Package logging assembles structured slog loggers and formatting helpers used
// across gradecheck.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so ingest and session code can tag
// log lines with the snapshot being evaluated. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Command output goes to stdout; log lines go to stderr and, when configured,
// to a JSON log file.
package logging
