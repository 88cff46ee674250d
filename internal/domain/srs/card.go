package srs

import "time"

// State is the discrete learning phase of a card.
type State string

// Possible card states
const (
	StateNew        State = "new"        // never reviewed
	StateLearning   State = "learning"   // in initial acquisition
	StateReview     State = "review"     // graduated, on long intervals
	StateRelearning State = "relearning" // lapsed out of review
)

// IsValid reports whether the state is one of the known card states.
func (s State) IsValid() bool {
	switch s {
	case StateNew, StateLearning, StateReview, StateRelearning:
		return true
	default:
		return false
	}
}

// Rating is a review-outcome label fed into the scheduler.
type Rating string

// Possible rating values
const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Ratings lists every rating in ascending order of recall quality.
func Ratings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// IsValid reports whether the rating is one of the known ratings.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	default:
		return false
	}
}

// Card is the memory state the scheduler maintains for one (user, word)
// pair. Stability is the number of days after which recall probability
// decays to the retention target; Difficulty is a 1-10 scale modulating how
// fast stability grows. Cards are treated as immutable values: scheduling
// produces new cards rather than mutating existing ones.
type Card struct {
	Due           time.Time `json:"due"`
	Stability     float64   `json:"stability"`
	Difficulty    float64   `json:"difficulty"`
	ElapsedDays   int       `json:"elapsed_days"`
	ScheduledDays int       `json:"scheduled_days"`
	Reps          int       `json:"reps"`
	Lapses        int       `json:"lapses"`
	State         State     `json:"state"`
	LastReview    time.Time `json:"last_review,omitempty"`
}

// NewCard creates a fresh card that has never been reviewed. The card is
// due immediately.
func NewCard(now time.Time) Card {
	return Card{
		Due:   now,
		State: StateNew,
	}
}
