package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidWordStatus is returned when a word status value is not
	// one of the known statuses.
	ErrInvalidWordStatus = errors.New("invalid word status")
)
