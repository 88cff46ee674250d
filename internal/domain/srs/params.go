package srs

// Params defines all configurable parameters for the scheduling algorithm.
type Params struct {
	// Initial stability (in days) assigned on the first rating of a card.
	InitialStability map[Rating]float64

	// Difficulty handling
	InitialDifficulty    float64            // difficulty assigned to a brand-new card
	DifficultyAdjustment map[Rating]float64 // per-rating difficulty delta
	MeanReversionWeight  float64            // pull toward InitialDifficulty on every review
	MinDifficulty        float64
	MaxDifficulty        float64

	// Stability growth on successful reviews
	GrowthWeight     float64            // exponent of the base growth factor
	StabilityDecay   float64            // dampens growth as stability rises
	RetrievabilityWt float64            // rewards reviews done near the forgetting point
	GrowthBonus      map[Rating]float64 // scales growth per successful rating

	// Lapse handling
	ForgetFactor   float64 // stability multiplier applied on a lapse, < 1
	RelearnMinutes int     // minutes until a lapsed card is due again

	// Scheduling
	DesiredRetention    float64 // recall probability targeted when converting stability to days
	MaxIntervalDays     int
	GraduationStability float64 // stability at which a learning card enters review

	// MasteryStability is the stability (in days) beyond which a review-state
	// card is considered mastered. Consumed by the word status lifecycle, not
	// by the scheduler itself.
	MasteryStability float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		InitialStability: map[Rating]float64{
			RatingAgain: 0.5,
			RatingHard:  1.2,
			RatingGood:  3.0,
			RatingEasy:  8.0,
		},

		InitialDifficulty: 5.0,
		DifficultyAdjustment: map[Rating]float64{
			RatingAgain: 1.6,
			RatingHard:  0.8,
			RatingGood:  0.0,
			RatingEasy:  -0.6,
		},
		MeanReversionWeight: 0.05,
		MinDifficulty:       1.0,
		MaxDifficulty:       10.0,

		GrowthWeight:     1.54,
		StabilityDecay:   0.11,
		RetrievabilityWt: 1.01,
		GrowthBonus: map[Rating]float64{
			RatingHard: 0.3,
			RatingGood: 1.0,
			RatingEasy: 2.0,
		},

		ForgetFactor:   0.5,
		RelearnMinutes: 10,

		DesiredRetention:    0.9,
		MaxIntervalDays:     36500,
		GraduationStability: 2.0,

		MasteryStability: 21.0,
	}
}
