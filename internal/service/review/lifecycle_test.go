package review

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/domain/srs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLifecycle(t *testing.T) (*WordLifecycle, *fakeStatusStore) {
	t.Helper()
	statuses := newFakeStatusStore()
	params := srs.NewDefaultParams()
	lifecycle := NewWordLifecycle(
		statuses,
		srs.NewSchedulerWithParams(params),
		params.MasteryStability,
		slog.Default(),
	)
	return lifecycle, statuses
}

func TestWordLifecycleOnErrorCreatesRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	err := lifecycle.OnError(ctx, userID, wordID, now)
	require.NoError(t, err)

	status, err := statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, domain.WordStatusLearning, status.Status)
	assert.Equal(t, 1, status.ErrorCount)
	require.NotNil(t, status.LastErrorAt)
	assert.True(t, status.LastErrorAt.Equal(now))
	assert.Equal(t, srs.StateLearning, status.State)
	assert.Equal(t, 1, status.Reps)
	assert.Equal(t, 1, status.Lapses)
	assert.Greater(t, status.Stability, 0.0)
}

func TestWordLifecycleOnErrorIncrementsExistingRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, now))
	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, now.Add(time.Hour)))

	status, err := statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, 2, status.ErrorCount)
	assert.Equal(t, 2, status.Reps)
	assert.Equal(t, domain.WordStatusLearning, status.Status)
}

// A correct answer for a word with no tracking row must not create one.
func TestWordLifecycleOnSuccessUntrackedIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	err := lifecycle.OnSuccess(ctx, userID, wordID, now)
	require.NoError(t, err)

	_, err = statuses.Get(ctx, userID, wordID)
	assert.Error(t, err, "no row should have been created")
}

func TestWordLifecycleOnSuccessMasteredIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mastered, err := domain.NewUserWordStatus(userID, wordID, now)
	require.NoError(t, err)
	mastered.Status = domain.WordStatusMastered
	mastered.Stability = 50
	mastered.State = srs.StateReview
	mastered.Reps = 10
	require.NoError(t, statuses.Upsert(ctx, mastered))

	require.NoError(t, lifecycle.OnSuccess(ctx, userID, wordID, now.AddDate(0, 0, 30)))

	status, err := statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, domain.WordStatusMastered, status.Status)
	assert.Equal(t, 10, status.Reps, "mastered word must not be rescheduled")
}

func TestWordLifecycleOnSuccessDoesNotTouchErrorCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, now))
	require.NoError(t, lifecycle.OnSuccess(ctx, userID, wordID, now.Add(time.Hour)))

	status, err := statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.ErrorCount)
	require.NotNil(t, status.LastErrorAt)
	assert.True(t, status.LastErrorAt.Equal(now))
}

// A word climbs to Mastered through repeated successful reviews taken when
// due, and an error afterwards demotes it back to Learning.
func TestWordLifecycleMasteryAndDemotion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Start tracking via an error, as the app does.
	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, now))

	// Review the word each time it comes due until it masters.
	var status *domain.UserWordStatus
	var err error
	for i := 0; i < 20; i++ {
		status, err = statuses.Get(ctx, userID, wordID)
		require.NoError(t, err)
		if status.Status == domain.WordStatusMastered {
			break
		}
		require.NoError(t, lifecycle.OnSuccess(ctx, userID, wordID, status.Due))
	}

	status, err = statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	require.Equal(t, domain.WordStatusMastered, status.Status,
		"word did not master within 20 reviews")
	assert.Equal(t, srs.StateReview, status.State)
	assert.Greater(t, status.Stability, lifecycle.masteryStability)

	// A later miss demotes it.
	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, status.Due))
	status, err = statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, domain.WordStatusLearning, status.Status)
	assert.Equal(t, srs.StateRelearning, status.State)
	assert.Equal(t, 2, status.ErrorCount)
}

func TestWordLifecycleTrack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lifecycle, statuses := newTestLifecycle(t)
	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, lifecycle.Track(ctx, userID, wordID, now))

	status, err := statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, domain.WordStatusNew, status.Status)
	assert.Equal(t, 0, status.Reps)
	assert.Equal(t, 0, status.ErrorCount)

	// Tracking again leaves the row untouched.
	require.NoError(t, lifecycle.OnError(ctx, userID, wordID, now))
	require.NoError(t, lifecycle.Track(ctx, userID, wordID, now.Add(time.Hour)))

	status, err = statuses.Get(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, domain.WordStatusLearning, status.Status)
	assert.Equal(t, 1, status.ErrorCount)
}
