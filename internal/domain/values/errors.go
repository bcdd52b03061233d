package values

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError indicates a value object was constructed from unusable input.
type InvalidArgumentError struct {
	Cause   error
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new invalid argument error.
func NewInvalidArgumentError(field, message string, cause error) *InvalidArgumentError {
	return &InvalidArgumentError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
