package errs

import (
	"errors"
	"fmt"
)

// ErrUniquenessViolation is the sentinel error for unique constraint violations.
var ErrUniquenessViolation = errors.New("uniqueness violation")

// UniquenessViolationError indicates that a value collided with an existing
// record on a unique constraint.
type UniquenessViolationError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewUniquenessViolationError creates a UniquenessViolationError for the given parameter and value.
func NewUniquenessViolationError(paramName, value string) *UniquenessViolationError {
	return &UniquenessViolationError{
		ParamName: paramName,
		Value:     value,
	}
}

// NewUniquenessViolationErrorWithCause creates a UniquenessViolationError wrapping an underlying cause.
func NewUniquenessViolationErrorWithCause(paramName, value string, cause error) *UniquenessViolationError {
	return &UniquenessViolationError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *UniquenessViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrUniquenessViolation, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUniquenessViolation, e.Value))
}

func (e *UniquenessViolationError) Unwrap() error {
	return ErrUniquenessViolation
}
