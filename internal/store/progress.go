package store

import (
	"context"
	"time"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
)

// PracticeProgressStore defines the persistence interface for per-sentence
// dictation progress.
type PracticeProgressStore interface {
	// Get retrieves the progress row for a (user, sentence) pair.
	// Returns ErrProgressNotFound if no row exists.
	Get(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.PracticeProgress, error)

	// RecordAttempt upserts one submission: a new row starts at one attempt,
	// an existing row increments attempts, accumulates duration, and
	// replaces the score with the latest one.
	RecordAttempt(ctx context.Context, userID, sentenceID uuid.UUID, score, durationSeconds int) error
}

// StudyStatStore defines the persistence interface for the per-day study
// time aggregate.
type StudyStatStore interface {
	// AddDuration accumulates study seconds onto the (user, day) aggregate,
	// inserting the row on first use. The day is truncated to a UTC
	// calendar date.
	AddDuration(ctx context.Context, userID uuid.UUID, day time.Time, durationSeconds int) error
}
