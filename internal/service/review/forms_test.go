package review

import (
	"testing"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormIndexResolve(t *testing.T) {
	t.Parallel()

	runID := uuid.New()
	catID := uuid.New()
	index := buildFormIndex([]domain.WordOccurrence{
		{WordID: runID, Lemma: "run", Exchange: "p:ran/d:run/i:running/3:runs"},
		{WordID: catID, Lemma: "cat", Exchange: "s:cats"},
	})

	testCases := []struct {
		name     string
		tokens   []string
		expected []uuid.UUID
	}{
		{
			name:     "lemma resolves",
			tokens:   []string{"run"},
			expected: []uuid.UUID{runID},
		},
		{
			name:     "inflected form resolves to the lemma's word",
			tokens:   []string{"ran"},
			expected: []uuid.UUID{runID},
		},
		{
			name:     "unknown tokens are dropped",
			tokens:   []string{"the", "running", "quickly"},
			expected: []uuid.UUID{runID},
		},
		{
			name:     "duplicates collapse to one ID in first-hit order",
			tokens:   []string{"cats", "ran", "runs", "cat"},
			expected: []uuid.UUID{catID, runID},
		},
		{
			name:     "case-insensitive lookup",
			tokens:   []string{"RAN"},
			expected: []uuid.UUID{runID},
		},
		{
			name:     "no tokens resolve",
			tokens:   []string{"the", "a"},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := index.resolve(tc.tokens)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestBuildFormIndexLaterOccurrenceWins(t *testing.T) {
	t.Parallel()

	first := uuid.New()
	second := uuid.New()
	index := buildFormIndex([]domain.WordOccurrence{
		{WordID: first, Lemma: "bank"},
		{WordID: second, Lemma: "bank"},
	})

	got := index.resolve([]string{"bank"})
	assert.Equal(t, []uuid.UUID{second}, got)
}

func TestBuildFormIndexEmpty(t *testing.T) {
	t.Parallel()

	index := buildFormIndex(nil)
	assert.Empty(t, index.resolve([]string{"anything"}))
}
