package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument signals a malformed filter, brand, page or cursor.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDecode signals a search engine response that does not match the expected shape.
	ErrDecode = errors.New("unexpected search response shape")
)

// DecodeError wraps ErrDecode with the name of the shape that failed validation.
// A decode failure is fatal for the request: no partial results are returned.
type DecodeError struct {
	Shape string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrDecode.Error(), e.Shape)
	}
	return fmt.Sprintf("%s: %s: %v", ErrDecode.Error(), e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// NewDecodeError creates a decode error for the given shape.
func NewDecodeError(shape string, err error) error {
	return &DecodeError{Shape: shape, Err: err}
}

// Invalid wraps ErrInvalidArgument with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
