package srs

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInvalidRating = errors.New("invalid rating")
	ErrInvalidState  = errors.New("invalid card state")
)

// Scheduler defines the interface for the forgetting-curve scheduling
// algorithm. Implementations must be pure: the same card, rating, and
// timestamp always yield the same result, and the input card is never
// modified. The word status lifecycle consumes only the Again and Good
// outcomes, but the full rating set is part of the contract so the
// algorithm stays swappable.
type Scheduler interface {
	// NewCard creates a fresh card with no review history, due immediately.
	NewCard(now time.Time) Card

	// Preview computes, for every rating, the card that would result from
	// applying that rating at the given time.
	Preview(card Card, now time.Time) (map[Rating]Card, error)

	// Next applies a single rating at the given time and returns the
	// resulting card.
	Next(card Card, rating Rating, now time.Time) (Card, error)
}

// defaultScheduler is the standard implementation of the Scheduler interface.
type defaultScheduler struct {
	params *Params
}

// NewDefaultScheduler creates a scheduler with default parameters.
func NewDefaultScheduler() Scheduler {
	return &defaultScheduler{params: NewDefaultParams()}
}

// NewSchedulerWithParams creates a scheduler with custom parameters.
func NewSchedulerWithParams(params *Params) Scheduler {
	return &defaultScheduler{params: params}
}

// NewCard implements Scheduler.NewCard.
func (s *defaultScheduler) NewCard(now time.Time) Card {
	return NewCard(now)
}

// Preview implements Scheduler.Preview.
func (s *defaultScheduler) Preview(card Card, now time.Time) (map[Rating]Card, error) {
	if !card.State.IsValid() {
		return nil, ErrInvalidState
	}

	outcomes := make(map[Rating]Card, 4)
	for _, rating := range Ratings() {
		outcomes[rating] = nextCard(card, rating, now, s.params)
	}
	return outcomes, nil
}

// Next implements Scheduler.Next.
func (s *defaultScheduler) Next(card Card, rating Rating, now time.Time) (Card, error) {
	if !rating.IsValid() {
		return Card{}, ErrInvalidRating
	}
	if !card.State.IsValid() {
		return Card{}, ErrInvalidState
	}

	return nextCard(card, rating, now, s.params), nil
}
