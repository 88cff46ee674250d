package srs

import (
	"math"
	"time"
)

// The scheduler models memory with an exponential forgetting curve:
// recall probability after t days is 0.9^(t/S), where S is the card's
// stability. A successful review multiplies stability by a growth factor
// that is always >= 1; a lapse shrinks it by ForgetFactor. Difficulty
// drifts per rating and is pulled back toward its initial value on every
// review, which keeps a long run of identical ratings from pinning it at
// an extreme.

// retrievability returns the modeled probability of recall after
// elapsedDays, given the card's stability. A card with no stability has
// nothing to retrieve.
func retrievability(elapsedDays, stability float64) float64 {
	if stability <= 0 {
		return 0
	}
	return math.Pow(0.9, elapsedDays/stability)
}

// intervalDays converts a stability into a review interval: the number of
// days after which retrievability decays to the desired retention.
func intervalDays(stability float64, params *Params) int {
	days := stability * math.Log(params.DesiredRetention) / math.Log(0.9)
	interval := int(math.Round(days))
	if interval < 1 {
		interval = 1
	}
	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}
	return interval
}

// nextDifficulty applies the per-rating adjustment followed by mean
// reversion toward the initial difficulty, clamped to the configured range.
// A zero difficulty means the card has never been rated and starts from
// the initial value.
func nextDifficulty(current float64, rating Rating, params *Params) float64 {
	if current == 0 {
		current = params.InitialDifficulty
	}

	adjusted := current + params.DifficultyAdjustment[rating]
	reverted := params.MeanReversionWeight*params.InitialDifficulty +
		(1-params.MeanReversionWeight)*adjusted

	if reverted < params.MinDifficulty {
		reverted = params.MinDifficulty
	}
	if reverted > params.MaxDifficulty {
		reverted = params.MaxDifficulty
	}
	return reverted
}

// successStability computes the stability after a successful review
// (Hard, Good or Easy). The growth factor is 1 plus a product of
// non-negative terms, so stability never decreases on success. Growth is
// larger for easier cards, smaller for already-stable cards, and near zero
// when the review happens long before the forgetting point (retrievability
// close to 1).
func successStability(
	stability float64,
	difficulty float64,
	elapsedDays float64,
	rating Rating,
	params *Params,
) float64 {
	if stability <= 0 {
		return params.InitialStability[rating]
	}

	recall := retrievability(elapsedDays, stability)
	growth := 1 + math.Exp(params.GrowthWeight)*
		(params.MaxDifficulty+1-difficulty)*
		math.Pow(stability, -params.StabilityDecay)*
		(math.Exp(params.RetrievabilityWt*(1-recall))-1)*
		params.GrowthBonus[rating]
	return stability * growth
}

// lapseStability computes the stability after a lapse. The result never
// exceeds the pre-review stability.
func lapseStability(stability float64, params *Params) float64 {
	if stability <= 0 {
		return params.InitialStability[RatingAgain]
	}
	return stability * params.ForgetFactor
}

// nextCard computes the card state after applying one rating at the given
// time. It is a pure function: the input card is not modified.
func nextCard(card Card, rating Rating, now time.Time, params *Params) Card {
	next := card
	next.Reps++
	next.LastReview = now

	var elapsed float64
	if !card.LastReview.IsZero() {
		elapsed = now.Sub(card.LastReview).Hours() / 24
		if elapsed < 0 {
			elapsed = 0
		}
	}
	next.ElapsedDays = int(elapsed)
	next.Difficulty = nextDifficulty(card.Difficulty, rating, params)

	if rating == RatingAgain {
		next.Lapses++
		if card.State == StateNew {
			next.Stability = params.InitialStability[RatingAgain]
		} else {
			next.Stability = lapseStability(card.Stability, params)
		}
		if card.State == StateReview || card.State == StateRelearning {
			next.State = StateRelearning
		} else {
			next.State = StateLearning
		}
		next.ScheduledDays = 0
		next.Due = now.Add(time.Duration(params.RelearnMinutes) * time.Minute)
		return next
	}

	// Successful review
	switch card.State {
	case StateNew:
		next.Stability = params.InitialStability[rating]
	case StateLearning, StateRelearning:
		// Acquisition phase: stability floors at the rating's initial value,
		// then grows by the usual factor.
		base := card.Stability
		if base < params.InitialStability[rating] {
			base = params.InitialStability[rating]
		}
		next.Stability = successStability(base, next.Difficulty, elapsed, rating, params)
	default:
		next.Stability = successStability(card.Stability, next.Difficulty, elapsed, rating, params)
	}

	if card.State == StateReview || next.Stability >= params.GraduationStability {
		next.State = StateReview
	} else {
		next.State = StateLearning
	}

	days := intervalDays(next.Stability, params)
	next.ScheduledDays = days
	next.Due = now.AddDate(0, 0, days)
	return next
}
