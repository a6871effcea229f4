package errs

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("object already exists")

// ConflictError is returned by repositories when a write violates a uniqueness rule,
// e.g. a second customer with the same phone number.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %v (cause: %s)", ErrConflict, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %v", ErrConflict, e.ParamName, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
