package store

import (
	"context"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
)

// SentenceStore defines the sentence persistence interface consumed by the
// dictation engine. Sentence CRUD itself belongs to material management and
// is out of scope here; the engine only reads.
type SentenceStore interface {
	// GetWithOwner retrieves a sentence together with the owner of its
	// parent material, in a single lookup.
	// Returns ErrSentenceNotFound if the sentence (or its material) does
	// not exist. Soft-deleted sentences are returned with TrashedAt set;
	// callers decide how to treat them.
	GetWithOwner(ctx context.Context, id uuid.UUID) (*domain.SentenceWithOwner, error)
}
