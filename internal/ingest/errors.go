package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderNotFound marks input that does not contain the export header line.
	ErrHeaderNotFound = errors.New("header signature not found")
	// ErrUnknownEncoding marks a forced encoding name that cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrDecode marks bytes that could not be decoded with the chosen encoding.
	ErrDecode = errors.New("decode failed")
)

// Error carries an ingest failure together with its classification.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := "malformed input: " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the underlying cause to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrorKind returns a short classification string for the failure.
func (e *Error) ErrorKind() string {
	switch {
	case errors.Is(e.Kind, ErrHeaderNotFound):
		return "header_not_found"
	case errors.Is(e.Kind, ErrUnknownEncoding):
		return "configuration"
	default:
		return "decode"
	}
}

func newError(kind error, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// ParseWarning records a field that was coerced during parsing. Warnings are
// not fatal; the affected record is kept with the coerced value.
type ParseWarning struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s %q %s", w.Line, w.Field, w.Value, w.Reason)
}
