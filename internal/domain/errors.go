package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LookupErrorKind classifies dictionary lookup failures.
type LookupErrorKind string

const (
	LookupNotFound   LookupErrorKind = "NOT_FOUND"
	LookupTransient  LookupErrorKind = "TRANSIENT"
	LookupUnexpected LookupErrorKind = "UNEXPECTED"
)

// User-facing messages shown in the error panel.
const (
	MsgWordNotFound    = "Word not found in our database."
	MsgLookupFailed    = "Failed to fetch word data. Please try again later."
	MsgUnexpectedError = "An unexpected error occurred."
)

// LookupError is returned by the dictionary client. It terminates a search
// and its UserMessage becomes the visible error state.
type LookupError struct {
	Kind   LookupErrorKind
	Word   string
	Status int
	Err    error
}

// NewLookupError creates a LookupError of the given kind.
func NewLookupError(kind LookupErrorKind, word string, err error) *LookupError {
	return &LookupError{Kind: kind, Word: word, Err: err}
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("lookup %q: %s", e.Word, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrNotFound for missing words and ErrUnavailable for
// everything else, followed by the underlying cause.
func (e *LookupError) Unwrap() []error {
	sentinel := ErrUnavailable
	if e.Kind == LookupNotFound {
		sentinel = ErrNotFound
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// UserMessage returns the message displayed to the user.
func (e *LookupError) UserMessage() string {
	switch e.Kind {
	case LookupNotFound:
		return MsgWordNotFound
	case LookupTransient:
		return MsgLookupFailed
	default:
		return MsgUnexpectedError
	}
}

// AsLookupError converts any error into a LookupError. Errors that are not
// already a LookupError are classified as unexpected.
func AsLookupError(word string, err error) *LookupError {
	var le *LookupError
	if errors.As(err, &le) {
		return le
	}
	return NewLookupError(LookupUnexpected, word, err)
}
