package review

import (
	"strings"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
)

// formIndex maps lowercased surface forms to the word they belong to. It
// is built fresh per request from the sentence's recorded vocabulary and
// never shared across requests.
type formIndex map[string]uuid.UUID

// buildFormIndex indexes every surface form of the sentence's vocabulary:
// each lemma itself plus all of its exchange forms. When two words share a
// surface form the later occurrence wins; in practice overlaps are rare
// and either resolution is defensible.
func buildFormIndex(occurrences []domain.WordOccurrence) formIndex {
	index := make(formIndex)
	for i := range occurrences {
		for _, form := range occurrences[i].SurfaceForms() {
			index[form] = occurrences[i].WordID
		}
	}
	return index
}

// resolve maps tokens to word IDs through the index, dropping tokens that
// resolve to nothing (function words, typos, vocabulary not recorded for
// the sentence). Each word appears at most once in the result, in first-hit
// order, so one submission applies at most one memory update per word.
func (idx formIndex) resolve(tokens []string) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, token := range tokens {
		id, ok := idx[strings.ToLower(token)]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
