package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrSentenceNotFound indicates that the requested sentence does not exist.
	ErrSentenceNotFound = fmt.Errorf("%w: sentence", ErrNotFound)

	// ErrWordNotFound indicates that the requested word does not exist.
	ErrWordNotFound = fmt.Errorf("%w: word", ErrNotFound)

	// ErrUserWordStatusNotFound indicates that no tracking row exists for the
	// requested (user, word) pair.
	ErrUserWordStatusNotFound = fmt.Errorf("%w: user word status", ErrNotFound)

	// ErrProgressNotFound indicates that no practice progress row exists for
	// the requested (user, sentence) pair.
	ErrProgressNotFound = fmt.Errorf("%w: practice progress", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
