package errs

import (
	"errors"
	"fmt"
)

var (
	ErrCollaboratorUnavailable = errors.New("collaborator is unavailable")
	ErrRecognitionFailed       = errors.New("label recognition failed")
)

// CollaboratorError wraps a failure of an external system (call system, OCR engine).
// These failures are transient and never change stored state.
type CollaboratorError struct {
	Name     string
	Sentinel error
	Cause    error
}

func NewCollaboratorError(name string, cause error) *CollaboratorError {
	return &CollaboratorError{
		Name:     name,
		Sentinel: ErrCollaboratorUnavailable,
		Cause:    cause,
	}
}

func NewRecognitionFailedError(cause error) *CollaboratorError {
	return &CollaboratorError{
		Name:     "ocr",
		Sentinel: ErrRecognitionFailed,
		Cause:    cause,
	}
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", e.sentinel(), e.Name, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.sentinel(), e.Name)
}

// Unwrap exposes both the sentinel and the cause, so callers can match either
// ErrCollaboratorUnavailable or the underlying failure such as context.DeadlineExceeded.
func (e *CollaboratorError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Cause}
}

func (e *CollaboratorError) sentinel() error {
	if e.Sentinel == nil {
		return ErrCollaboratorUnavailable
	}
	return e.Sentinel
}
