package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrForbidden = errors.New("access forbidden")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already in use")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerExists = errors.New("customer email already in use")
var ErrServiceNotFound = errors.New("service not found")
var ErrTransactionNotFound = errors.New("transaction not found")
var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrAppointmentOverlap = errors.New("appointment overlaps an existing booking")
var ErrConsultationNotFound = errors.New("consultation form not found")

// ValidationError reports a malformed or inconsistent request field. The
// message always names the offending field so clients can surface it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
