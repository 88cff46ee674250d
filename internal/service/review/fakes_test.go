package review

import (
	"context"
	"sync"
	"time"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
)

// statusKey identifies one (user, word) tracking row.
type statusKey struct {
	userID uuid.UUID
	wordID uuid.UUID
}

// fakeStatusStore is an in-memory store.UserWordStatusStore.
type fakeStatusStore struct {
	mu        sync.Mutex
	rows      map[statusKey]domain.UserWordStatus
	getErr    error
	upsertErr error
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{rows: make(map[statusKey]domain.UserWordStatus)}
}

func (f *fakeStatusStore) Get(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.UserWordStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[statusKey{userID, wordID}]
	if !ok {
		return nil, store.ErrUserWordStatusNotFound
	}
	copied := row
	return &copied, nil
}

func (f *fakeStatusStore) Upsert(ctx context.Context, status *domain.UserWordStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[statusKey{status.UserID, status.WordID}] = *status
	return nil
}

var _ store.UserWordStatusStore = (*fakeStatusStore)(nil)

// fakeSentenceStore is an in-memory store.SentenceStore.
type fakeSentenceStore struct {
	sentences map[uuid.UUID]domain.SentenceWithOwner
	err       error
}

func newFakeSentenceStore() *fakeSentenceStore {
	return &fakeSentenceStore{sentences: make(map[uuid.UUID]domain.SentenceWithOwner)}
}

func (f *fakeSentenceStore) GetWithOwner(
	ctx context.Context,
	id uuid.UUID,
) (*domain.SentenceWithOwner, error) {
	if f.err != nil {
		return nil, f.err
	}
	sentence, ok := f.sentences[id]
	if !ok {
		return nil, store.ErrSentenceNotFound
	}
	copied := sentence
	return &copied, nil
}

var _ store.SentenceStore = (*fakeSentenceStore)(nil)

// fakeWordStore is an in-memory store.WordStore.
type fakeWordStore struct {
	words       map[uuid.UUID]domain.Word
	occurrences map[uuid.UUID][]domain.WordOccurrence
	occErr      error
}

func newFakeWordStore() *fakeWordStore {
	return &fakeWordStore{
		words:       make(map[uuid.UUID]domain.Word),
		occurrences: make(map[uuid.UUID][]domain.WordOccurrence),
	}
}

func (f *fakeWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	word, ok := f.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}
	copied := word
	return &copied, nil
}

func (f *fakeWordStore) GetOccurrencesForSentence(
	ctx context.Context,
	sentenceID uuid.UUID,
) ([]domain.WordOccurrence, error) {
	if f.occErr != nil {
		return nil, f.occErr
	}
	return f.occurrences[sentenceID], nil
}

var _ store.WordStore = (*fakeWordStore)(nil)

// fakeProgressStore is an in-memory store.PracticeProgressStore.
type fakeProgressStore struct {
	mu       sync.Mutex
	attempts []recordedAttempt
	err      error
}

type recordedAttempt struct {
	userID     uuid.UUID
	sentenceID uuid.UUID
	score      int
	duration   int
}

func (f *fakeProgressStore) Get(
	ctx context.Context,
	userID, sentenceID uuid.UUID,
) (*domain.PracticeProgress, error) {
	return nil, store.ErrProgressNotFound
}

func (f *fakeProgressStore) RecordAttempt(
	ctx context.Context,
	userID, sentenceID uuid.UUID,
	score, durationSeconds int,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.attempts = append(f.attempts, recordedAttempt{userID, sentenceID, score, durationSeconds})
	return nil
}

var _ store.PracticeProgressStore = (*fakeProgressStore)(nil)

// fakeStatStore is an in-memory store.StudyStatStore.
type fakeStatStore struct {
	mu        sync.Mutex
	durations map[uuid.UUID]int
	total     int
	err       error
}

func newFakeStatStore() *fakeStatStore {
	return &fakeStatStore{durations: make(map[uuid.UUID]int)}
}

func (f *fakeStatStore) AddDuration(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	durationSeconds int,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.durations[userID] += durationSeconds
	f.total += durationSeconds
	return nil
}

var _ store.StudyStatStore = (*fakeStatStore)(nil)
