package dictation

import "strings"

// punctuation is the exact character set stripped before comparison.
// Apostrophes are included, so contractions collapse ("Don't" -> "dont").
const punctuation = ".,/#!$%^&*;:{}=-_`~()?\"'\\[]|<>@"

// Normalize canonicalizes text for comparison: lowercase, strip
// punctuation, collapse runs of whitespace to single spaces, and trim.
// Normalize is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// Tokenize normalizes text and splits it into words. Empty input yields an
// empty slice, not a slice holding one empty string.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
