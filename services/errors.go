package services

import "errors"

// Failure kinds surfaced to controllers. Wrap with
// fmt.Errorf("detail: %w", Err...) to attach a human-readable message.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
)
