package domain

import "errors"

var (
	errNotFound           = errors.New("booking not found")
	errEntityNotFound     = errors.New("entity not found")
	errUserNotFound       = errors.New("user not found")
	errAccessDenied       = errors.New("access denied")
	errInvalidTransition  = errors.New("booking is already completed or cancelled")
	errInvalidDateRange   = errors.New("check-out date must be after check-in date")
	errInvalidGuestCount  = errors.New("guest count must be at least 1")
	errEmailTaken         = errors.New("user with this email already exists")
	errInvalidCredentials = errors.New("invalid email or password")
	errStorageCorrupt     = errors.New("stored collection is corrupt")
)

func ErrNotFound() error           { return errNotFound }
func ErrEntityNotFound() error     { return errEntityNotFound }
func ErrUserNotFound() error       { return errUserNotFound }
func ErrAccessDenied() error       { return errAccessDenied }
func ErrInvalidTransition() error  { return errInvalidTransition }
func ErrInvalidDateRange() error   { return errInvalidDateRange }
func ErrInvalidGuestCount() error  { return errInvalidGuestCount }
func ErrEmailTaken() error         { return errEmailTaken }
func ErrInvalidCredentials() error { return errInvalidCredentials }
func ErrStorageCorrupt() error     { return errStorageCorrupt }

// ValidationError carries field-level messages back to the caller for
// per-field display. It is returned as a value, never panicked.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
