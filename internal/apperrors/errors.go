package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when principal, rate or term fall outside the accepted domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateLoan is returned when the derived monthly payment is not smaller than the principal.
	ErrDegenerateLoan = errors.New("degenerate loan")

	// ErrSafetyBoundExceeded signals that a schedule did not close within termMonths+1 periods.
	ErrSafetyBoundExceeded = errors.New("amortization safety bound exceeded")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError returns an error matching both ErrInvalidInput and *ValidationError.
func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, &ValidationError{Field: field, Message: message})
}

// NewValidationErrorWithCause is NewValidationError keeping the underlying parse error.
func NewValidationErrorWithCause(field, message string, cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, &ValidationError{Field: field, Message: message, Cause: cause})
}

// Kind maps an error to a short label used for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDegenerateLoan):
		return "degenerate_loan"
	case errors.Is(err, ErrSafetyBoundExceeded):
		return "safety_bound_exceeded"
	default:
		return "internal"
	}
}
