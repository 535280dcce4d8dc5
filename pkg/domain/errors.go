package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount matches every *InvalidCountError.
	ErrInvalidCount = errors.New("invalid count")

	// ErrSourceUnavailable matches every *SourceUnavailableError.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrReadFailure matches every *ReadFailureError.
	ErrReadFailure = errors.New("read failure")
)

// InvalidCountError reports a malformed or non-positive count argument.
type InvalidCountError struct {
	Unit string // "line" or "byte"; empty when parsed without context
	Text string // The literal text as given
}

func (e *InvalidCountError) Error() string {
	if e.Unit == "" {
		return e.Text
	}
	return fmt.Sprintf("illegal %s count -- %s", e.Unit, e.Text)
}

func (e *InvalidCountError) Is(target error) bool { return target == ErrInvalidCount }

// SourceUnavailableError reports a source that could not be opened.
type SourceUnavailableError struct {
	Name string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

func (e *SourceUnavailableError) Is(target error) bool { return target == ErrSourceUnavailable }

// ReadFailureError reports an I/O error in the middle of reading an opened source.
type ReadFailureError struct {
	Name string
	Err  error
}

func (e *ReadFailureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ReadFailureError) Unwrap() error { return e.Err }

func (e *ReadFailureError) Is(target error) bool { return target == ErrReadFailure }

// ValidationError represents a Config that breaks an invariant.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("config %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config %q: %s (got %v)", e.Key, e.Reason, e.Value)
}
