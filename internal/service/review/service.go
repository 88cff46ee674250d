// Package review contains the dictation review engine: grading a typed
// transcript against its sentence, updating per-word memory state through
// the scheduler, and keeping practice bookkeeping.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/echolearn/echo-api/internal/dictation"
	"github.com/google/uuid"
)

// DictationResult is what the caller gets back for one submission.
type DictationResult struct {
	// Score is the accuracy percentage, 0-100.
	Score int `json:"score"`
	// Diff is the word-level alignment between target and attempt.
	Diff []dictation.Segment `json:"diff"`
	// Target is the text the attempt was scored against.
	Target string `json:"target"`
}

// DictationService processes dictation submissions and explicit
// vocabulary-tracking requests.
type DictationService interface {
	// EvaluateDictation grades one dictation submission and applies its
	// side effects: practice progress, the daily study aggregate, and
	// per-word memory updates for the sentence's vocabulary.
	//
	// Scoring failures are fatal; side-effect failures are not. Once the
	// attempt has been graded the result is returned even when one or more
	// writes failed, so the user always sees their score. Failed writes are
	// logged and dropped, never retried here.
	//
	// Returns:
	//   - (nil, ErrSentenceNotFound): the sentence or its material is gone
	//   - (nil, ErrSentenceNotOwned): the caller does not own the material
	//   - (nil, ErrSentenceInTrash): the sentence is soft-deleted
	EvaluateDictation(
		ctx context.Context,
		userID uuid.UUID,
		sentenceID uuid.UUID,
		text string,
		durationSeconds int,
	) (*DictationResult, error)

	// TrackWord starts memory tracking for a word the user explicitly
	// added to their vocabulary. A word already tracked is left untouched.
	//
	// Returns ErrWordNotFound if the word does not exist.
	TrackWord(ctx context.Context, userID, wordID uuid.UUID) error
}

// Common error types for DictationService
var (
	// ErrSentenceNotFound indicates that the sentence does not exist.
	ErrSentenceNotFound = errors.New("sentence not found")

	// ErrSentenceNotOwned indicates that the user does not own the
	// sentence's parent material.
	ErrSentenceNotOwned = errors.New("unauthorized access: sentence not owned by user")

	// ErrSentenceInTrash indicates that the sentence is soft-deleted.
	ErrSentenceInTrash = errors.New("sentence is in trash")

	// ErrWordNotFound indicates that the word does not exist.
	ErrWordNotFound = errors.New("word not found")
)

// ServiceError wraps errors from the review service with operation
// context, so consumers can differentiate failures with errors.As instead
// of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "evaluate_dictation").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
