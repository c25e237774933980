package column

import (
	"errors"
	"fmt"
)

// ErrorType classifies compute errors.
type ErrorType int

const (
	// ErrorTypeInvalidType marks input whose declared type cannot be
	// aggregated (not a sequence of numeric scalars).
	ErrorTypeInvalidType ErrorType = iota
	// ErrorTypeLengthMismatch marks two non-null rows that disagree on
	// sequence width.
	ErrorTypeLengthMismatch
	// ErrorTypeNullRow marks a null row rejected under strict validation.
	ErrorTypeNullRow
)

// ComputeError is the structured error produced by normalization,
// validation and reduction. The whole operation aborts when one is
// returned; no partial output accompanies it.
type ComputeError struct {
	Type     ErrorType
	Message  string
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *ComputeError) Error() string {
	switch e.Type {
	case ErrorTypeLengthMismatch:
		return fmt.Sprintf("[LENGTH_MISMATCH] %s: expected %d, got %d", e.Message, e.Expected, e.Actual)
	case ErrorTypeInvalidType:
		return fmt.Sprintf("[INVALID_TYPE] %s", e.Message)
	case ErrorTypeNullRow:
		return fmt.Sprintf("[NULL_ROW] %s", e.Message)
	default:
		return fmt.Sprintf("[UNKNOWN_ERROR] %s", e.Message)
	}
}

// NewTypeError creates an error for input that is not a sequence of
// numeric scalars.
func NewTypeError(format string, args ...interface{}) *ComputeError {
	return &ComputeError{
		Type:    ErrorTypeInvalidType,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewLengthMismatchError creates an error reporting the consensus width
// and the offending row's width.
func NewLengthMismatchError(expected, actual int) *ComputeError {
	return &ComputeError{
		Type:     ErrorTypeLengthMismatch,
		Message:  "all sequences must have the same length",
		Expected: expected,
		Actual:   actual,
	}
}

// NewNullRowError creates an error for a null row under strict validation.
func NewNullRowError(index int) *ComputeError {
	return &ComputeError{
		Type:    ErrorTypeNullRow,
		Message: fmt.Sprintf("null row at index %d not allowed in strict mode", index),
	}
}

// IsTypeError reports whether err is a ComputeError of the invalid-type kind.
func IsTypeError(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce) && ce.Type == ErrorTypeInvalidType
}

// IsLengthMismatch reports whether err is a ComputeError of the
// length-mismatch kind.
func IsLengthMismatch(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce) && ce.Type == ErrorTypeLengthMismatch
}

// IsNullRowError reports whether err is a ComputeError of the null-row kind.
func IsNullRowError(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce) && ce.Type == ErrorTypeNullRow
}
