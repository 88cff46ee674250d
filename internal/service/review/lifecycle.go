package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/domain/srs"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
)

// WordLifecycle owns every transition of a user's word status. All card
// mutation goes through here: the orchestrator and the vocabulary surface
// never touch UserWordStatus rows directly.
//
// The status machine is deliberately coarse. An error always lands the
// word in Learning, whatever it was before. Success promotes to Mastered
// only once the scheduler has the card in review state with stability past
// the mastery threshold; everything below that stays Learning.
type WordLifecycle struct {
	statuses  store.UserWordStatusStore
	scheduler srs.Scheduler

	// masteryStability is the stability (days) a review-state card must
	// exceed before its word counts as mastered.
	masteryStability float64

	logger *slog.Logger
}

// NewWordLifecycle creates a WordLifecycle.
func NewWordLifecycle(
	statuses store.UserWordStatusStore,
	scheduler srs.Scheduler,
	masteryStability float64,
	log *slog.Logger,
) *WordLifecycle {
	if statuses == nil {
		panic("statuses cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &WordLifecycle{
		statuses:         statuses,
		scheduler:        scheduler,
		masteryStability: masteryStability,
		logger:           log.With(slog.String("component", "word_lifecycle")),
	}
}

// OnError records a dictation miss for a word. A word with no tracking row
// gets one, starting from a fresh card; an existing row is rescheduled
// with the Again rating. Either way the word ends up Learning with its
// error counters bumped.
func (l *WordLifecycle) OnError(ctx context.Context, userID, wordID uuid.UUID, now time.Time) error {
	log := logger.FromContextOrDefault(ctx, l.logger)

	status, err := l.statuses.Get(ctx, userID, wordID)
	if err != nil {
		if !errors.Is(err, store.ErrUserWordStatusNotFound) {
			return fmt.Errorf("failed to get user word status: %w", err)
		}
		status, err = domain.NewUserWordStatus(userID, wordID, now)
		if err != nil {
			return fmt.Errorf("failed to create user word status: %w", err)
		}
	}

	next, err := l.preview(status, now)
	if err != nil {
		return err
	}

	status.SetCard(next[srs.RatingAgain])
	status.Status = domain.WordStatusLearning
	status.ErrorCount++
	errorAt := now
	status.LastErrorAt = &errorAt
	status.UpdatedAt = now

	if err := l.statuses.Upsert(ctx, status); err != nil {
		return fmt.Errorf("failed to upsert user word status: %w", err)
	}

	log.Debug("recorded word error",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
		slog.Int("error_count", status.ErrorCount))
	return nil
}

// OnSuccess records a correct reproduction of a word. Untracked words stay
// untracked: a correct answer alone never creates a row. Mastered words
// stay put. Everything else is rescheduled with the Good rating and
// promoted to Mastered when the new card clears the mastery bar.
func (l *WordLifecycle) OnSuccess(ctx context.Context, userID, wordID uuid.UUID, now time.Time) error {
	log := logger.FromContextOrDefault(ctx, l.logger)

	status, err := l.statuses.Get(ctx, userID, wordID)
	if err != nil {
		if errors.Is(err, store.ErrUserWordStatusNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user word status: %w", err)
	}

	if status.Status == domain.WordStatusMastered {
		return nil
	}

	next, err := l.preview(status, now)
	if err != nil {
		return err
	}

	good := next[srs.RatingGood]
	status.SetCard(good)
	if good.State == srs.StateReview && good.Stability > l.masteryStability {
		status.Status = domain.WordStatusMastered
	} else {
		status.Status = domain.WordStatusLearning
	}
	status.UpdatedAt = now

	if err := l.statuses.Upsert(ctx, status); err != nil {
		return fmt.Errorf("failed to upsert user word status: %w", err)
	}

	if status.Status == domain.WordStatusMastered {
		log.Debug("word mastered",
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()),
			slog.Float64("stability", good.Stability))
	}
	return nil
}

// Track starts tracking a word without a review event, as happens when a
// user adds a word to their vocabulary by hand. Existing rows are left
// untouched.
func (l *WordLifecycle) Track(ctx context.Context, userID, wordID uuid.UUID, now time.Time) error {
	_, err := l.statuses.Get(ctx, userID, wordID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserWordStatusNotFound) {
		return fmt.Errorf("failed to get user word status: %w", err)
	}

	status, err := domain.NewUserWordStatus(userID, wordID, now)
	if err != nil {
		return fmt.Errorf("failed to create user word status: %w", err)
	}

	if err := l.statuses.Upsert(ctx, status); err != nil {
		return fmt.Errorf("failed to upsert user word status: %w", err)
	}
	return nil
}

// preview reconstructs the card and asks the scheduler for all outcomes.
// The card reconstruction treats rows with zero reps as historyless,
// which covers both freshly created rows and rows persisted before any
// review happened.
func (l *WordLifecycle) preview(
	status *domain.UserWordStatus,
	now time.Time,
) (map[srs.Rating]srs.Card, error) {
	outcomes, err := l.scheduler.Preview(status.Card(now), now)
	if err != nil {
		return nil, fmt.Errorf("scheduler preview failed: %w", err)
	}
	return outcomes, nil
}
