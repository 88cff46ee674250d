package domain

import (
	"errors"
	"time"

	"github.com/echolearn/echo-api/internal/domain/srs"
	"github.com/google/uuid"
)

// WordStatus is the coarse vocabulary status the rest of the app consumes.
type WordStatus string

// Possible word status values
const (
	WordStatusNew      WordStatus = "new"
	WordStatusLearning WordStatus = "learning"
	WordStatusMastered WordStatus = "mastered"
)

// IsValid reports whether the status is one of the known word statuses.
func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusNew, WordStatusLearning, WordStatusMastered:
		return true
	default:
		return false
	}
}

// Common validation errors for UserWordStatus
var (
	ErrEmptyStatusUserID  = errors.New("user word status user ID cannot be empty")
	ErrEmptyStatusWordID  = errors.New("user word status word ID cannot be empty")
	ErrNegativeErrorCount = errors.New("error count must be greater than or equal to 0")
	ErrNegativeStability  = errors.New("stability must be greater than or equal to 0")
)

// UserWordStatus tracks a user's memory of a single word: the scheduler's
// card fields flattened into the row, the coarse status, and dictation
// error bookkeeping. Exactly one row exists per (user, word) pair. Rows are
// created on the first error or an explicit add to vocabulary, never from a
// correct answer alone.
type UserWordStatus struct {
	UserID uuid.UUID  `json:"user_id"`
	WordID uuid.UUID  `json:"word_id"`
	Status WordStatus `json:"status"`

	// Card fields (see srs.Card)
	Due           time.Time  `json:"due"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   int        `json:"elapsed_days"`
	ScheduledDays int        `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	State         srs.State  `json:"state"`
	LastReview    *time.Time `json:"last_review,omitempty"`

	ErrorCount  int        `json:"error_count"`
	LastErrorAt *time.Time `json:"last_error_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserWordStatus creates a tracking row for a user and word with a fresh
// card and status New. Callers set the status and error fields appropriate
// to the event that created the row.
func NewUserWordStatus(userID, wordID uuid.UUID, now time.Time) (*UserWordStatus, error) {
	status := &UserWordStatus{
		UserID:    userID,
		WordID:    wordID,
		Status:    WordStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	status.SetCard(srs.NewCard(now))

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return status, nil
}

// Card reconstructs the scheduler card from the stored fields. A row with
// zero reps has no review history, so a fresh card is returned instead of
// trusting whatever zeros happen to be stored.
func (s *UserWordStatus) Card(now time.Time) srs.Card {
	if s.Reps == 0 {
		return srs.NewCard(now)
	}

	card := srs.Card{
		Due:           s.Due,
		Stability:     s.Stability,
		Difficulty:    s.Difficulty,
		ElapsedDays:   s.ElapsedDays,
		ScheduledDays: s.ScheduledDays,
		Reps:          s.Reps,
		Lapses:        s.Lapses,
		State:         s.State,
	}
	if s.LastReview != nil {
		card.LastReview = *s.LastReview
	}
	return card
}

// SetCard copies a scheduler card into the row's flattened card fields.
func (s *UserWordStatus) SetCard(card srs.Card) {
	s.Due = card.Due
	s.Stability = card.Stability
	s.Difficulty = card.Difficulty
	s.ElapsedDays = card.ElapsedDays
	s.ScheduledDays = card.ScheduledDays
	s.Reps = card.Reps
	s.Lapses = card.Lapses
	s.State = card.State
	if card.LastReview.IsZero() {
		s.LastReview = nil
	} else {
		lastReview := card.LastReview
		s.LastReview = &lastReview
	}
}

// Validate checks if the UserWordStatus has valid data.
// Returns an error if any field fails validation.
func (s *UserWordStatus) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStatusUserID
	}

	if s.WordID == uuid.Nil {
		return ErrEmptyStatusWordID
	}

	if !s.Status.IsValid() {
		return ErrInvalidWordStatus
	}

	if s.ErrorCount < 0 {
		return ErrNegativeErrorCount
	}

	if s.Stability < 0 {
		return ErrNegativeStability
	}

	return nil
}
