package store

import (
	"context"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
)

// WordStore defines the vocabulary read interface consumed by the
// dictation engine.
type WordStore interface {
	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// GetOccurrencesForSentence returns the vocabulary recorded for a
	// sentence at ingestion time, with each word's lemma text and exchange
	// encoding. The result is empty, not an error, for a sentence with no
	// recorded vocabulary.
	GetOccurrencesForSentence(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordOccurrence, error)
}
