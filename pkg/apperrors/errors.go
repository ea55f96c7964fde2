package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates the requested resource does not exist
var ErrNotFound = errors.New("not found")

// ValidationError reports a recoverable local validation failure, with one
// reason per failing field. The caller blocks submission until corrected.
type ValidationError struct {
	Reasons map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Reasons: make(map[string]string)}
}

// Add records a reason for a failing field
func (e *ValidationError) Add(field, reason string) {
	e.Reasons[field] = reason
}

// HasReasons reports whether any field failed
func (e *ValidationError) HasReasons() bool {
	return len(e.Reasons) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Reasons))
	for f := range e.Reasons {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Reasons[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmissionError indicates order submission failed at the network or backend
// boundary. The cart is never cleared on a submission failure.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("order submission failed: backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// LoadError indicates a catalog or order fetch failed. Callers render an
// empty/error state in place of the data.
type LoadError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to load %s: backend returned status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrInvalidStateTransition indicates a disallowed order status transition
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
