package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrSourceRead         = errors.New("source read failure")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateSong      = errors.New("duplicate song identifier")
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// SourceError reports that one named input (a stopword list or a lyric file)
// could not be read. It always unwraps to ErrSourceRead.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error { return []error{ErrSourceRead, e.Err} }

// NewSourceError wraps err as a read failure of source.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}
