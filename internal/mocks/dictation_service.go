package mocks

import (
	"context"
	"sync"

	"github.com/echolearn/echo-api/internal/service/review"
	"github.com/google/uuid"
)

// MockDictationService implements review.DictationService for testing
type MockDictationService struct {
	// Custom behavior functions
	EvaluateDictationFn func(ctx context.Context, userID, sentenceID uuid.UUID, text string, durationSeconds int) (*review.DictationResult, error)
	TrackWordFn         func(ctx context.Context, userID, wordID uuid.UUID) error

	// Default response values
	Result *review.DictationResult
	Err    error

	// Call tracking for verification
	EvaluateDictationCalls struct {
		mu          sync.Mutex
		Count       int
		UserIDs     []uuid.UUID
		SentenceIDs []uuid.UUID
		Texts       []string
		Durations   []int
	}

	TrackWordCalls struct {
		mu      sync.Mutex
		Count   int
		UserIDs []uuid.UUID
		WordIDs []uuid.UUID
	}
}

// EvaluateDictation implements the review.DictationService interface
func (m *MockDictationService) EvaluateDictation(
	ctx context.Context,
	userID uuid.UUID,
	sentenceID uuid.UUID,
	text string,
	durationSeconds int,
) (*review.DictationResult, error) {
	m.EvaluateDictationCalls.mu.Lock()
	m.EvaluateDictationCalls.Count++
	m.EvaluateDictationCalls.UserIDs = append(m.EvaluateDictationCalls.UserIDs, userID)
	m.EvaluateDictationCalls.SentenceIDs = append(m.EvaluateDictationCalls.SentenceIDs, sentenceID)
	m.EvaluateDictationCalls.Texts = append(m.EvaluateDictationCalls.Texts, text)
	m.EvaluateDictationCalls.Durations = append(m.EvaluateDictationCalls.Durations, durationSeconds)
	m.EvaluateDictationCalls.mu.Unlock()

	if m.EvaluateDictationFn != nil {
		return m.EvaluateDictationFn(ctx, userID, sentenceID, text, durationSeconds)
	}

	return m.Result, m.Err
}

// TrackWord implements the review.DictationService interface
func (m *MockDictationService) TrackWord(ctx context.Context, userID, wordID uuid.UUID) error {
	m.TrackWordCalls.mu.Lock()
	m.TrackWordCalls.Count++
	m.TrackWordCalls.UserIDs = append(m.TrackWordCalls.UserIDs, userID)
	m.TrackWordCalls.WordIDs = append(m.TrackWordCalls.WordIDs, wordID)
	m.TrackWordCalls.mu.Unlock()

	if m.TrackWordFn != nil {
		return m.TrackWordFn(ctx, userID, wordID)
	}

	return m.Err
}

// Verify interface satisfaction at compile time.
var _ review.DictationService = (*MockDictationService)(nil)
