package dictation

import "math"

// Result is the graded outcome of one dictation attempt.
type Result struct {
	// Score is the accuracy percentage, 0-100.
	Score int
	// Segments is the word-level alignment between target and attempt.
	Segments []Segment
	// MissedWords are target words the attempt got wrong or left out.
	MissedWords []string
	// CorrectWords are target words the attempt reproduced in order. A word
	// that was both matched and missed (repetition in the target) counts as
	// missed only.
	CorrectWords []string
}

// Score grades an attempt against a target. Both strings are normalized
// before comparison; scoring is symmetric in length, dividing matched words
// by the longer of the two token counts so padding the attempt with extra
// words cannot inflate the score. Two empty strings are a perfect score.
func Score(target, attempt string) Result {
	targetWords := Tokenize(target)
	attemptWords := Tokenize(attempt)

	segments := DiffWords(targetWords, attemptWords)

	matched := 0
	var missed, correct []string
	for _, segment := range segments {
		switch segment.Kind {
		case SegmentUnchanged:
			matched += len(segment.Words)
			correct = append(correct, segment.Words...)
		case SegmentRemoved:
			missed = append(missed, segment.Words...)
		}
	}

	denominator := len(targetWords)
	if len(attemptWords) > denominator {
		denominator = len(attemptWords)
	}

	score := 100
	if denominator > 0 {
		percent := float64(matched) / float64(denominator) * 100
		score = int(math.Round(math.Min(100, percent)))
	}

	missedSet := make(map[string]struct{}, len(missed))
	for _, word := range missed {
		missedSet[word] = struct{}{}
	}
	filtered := correct[:0]
	for _, word := range correct {
		if _, ok := missedSet[word]; !ok {
			filtered = append(filtered, word)
		}
	}

	return Result{
		Score:        score,
		Segments:     segments,
		MissedWords:  missed,
		CorrectWords: filtered,
	}
}
