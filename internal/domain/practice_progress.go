package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PracticeProgress validation errors
var (
	ErrEmptyProgressUserID     = errors.New("practice progress user ID cannot be empty")
	ErrEmptyProgressSentenceID = errors.New("practice progress sentence ID cannot be empty")
	ErrInvalidScore            = errors.New("score must be between 0 and 100")
	ErrInvalidAttempts         = errors.New("attempts must be greater than or equal to 1")
	ErrNegativeDuration        = errors.New("duration must be greater than or equal to 0")
)

// PracticeProgress records a user's dictation history for one sentence:
// the most recent score, the total number of attempts, and the cumulative
// time spent. One row per (user, sentence), accumulated across submissions.
type PracticeProgress struct {
	UserID     uuid.UUID `json:"user_id"`
	SentenceID uuid.UUID `json:"sentence_id"`
	Score      int       `json:"score"`    // latest score, 0-100
	Attempts   int       `json:"attempts"` // total submissions
	Duration   int       `json:"duration"` // cumulative seconds
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks if the PracticeProgress has valid data.
// Returns an error if any field fails validation.
func (p *PracticeProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}

	if p.SentenceID == uuid.Nil {
		return ErrEmptyProgressSentenceID
	}

	if p.Score < 0 || p.Score > 100 {
		return ErrInvalidScore
	}

	if p.Attempts < 1 {
		return ErrInvalidAttempts
	}

	if p.Duration < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// DailyStudyStat is the per-day study time aggregate, keyed by user and
// calendar day (UTC). Duration accumulates across submissions.
type DailyStudyStat struct {
	UserID    uuid.UUID `json:"user_id"`
	StudyDate time.Time `json:"study_date"` // date only, UTC midnight
	Duration  int       `json:"duration"`   // cumulative seconds
}

// StudyDay truncates a timestamp to the UTC calendar day it falls on.
func StudyDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
