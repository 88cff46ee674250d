package store

import (
	"context"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
)

// UserWordStatusStore defines the persistence interface for per-user word
// memory state.
//
// The read-modify-write cycle around Get and Upsert is not protected by
// optimistic concurrency: two simultaneous submissions touching the same
// (user, word) pair can race and one update can be lost. This is an
// accepted limitation of the current design.
type UserWordStatusStore interface {
	// Get retrieves the tracking row for a (user, word) pair.
	// Returns ErrUserWordStatusNotFound if no row exists.
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordStatus, error)

	// Upsert inserts the row if no (user, word) row exists, otherwise
	// replaces its mutable fields. It handles domain validation internally.
	Upsert(ctx context.Context, status *domain.UserWordStatus) error
}
