package domain

import (
	"testing"
	"time"

	"github.com/echolearn/echo-api/internal/domain/srs"
	"github.com/google/uuid"
)

func TestNewUserWordStatus(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	wordID := uuid.New()

	status, err := NewUserWordStatus(userID, wordID, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status.UserID != userID {
		t.Errorf("UserID = %v, want %v", status.UserID, userID)
	}
	if status.WordID != wordID {
		t.Errorf("WordID = %v, want %v", status.WordID, wordID)
	}
	if status.Status != WordStatusNew {
		t.Errorf("Status = %v, want %v", status.Status, WordStatusNew)
	}
	if status.State != srs.StateNew {
		t.Errorf("State = %v, want %v", status.State, srs.StateNew)
	}
	if !status.Due.Equal(now) {
		t.Errorf("Due = %v, want %v", status.Due, now)
	}
	if status.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, want 0", status.ErrorCount)
	}

	// Invalid IDs are rejected.
	if _, err := NewUserWordStatus(uuid.Nil, wordID, now); err != ErrEmptyStatusUserID {
		t.Errorf("nil user ID: err = %v, want ErrEmptyStatusUserID", err)
	}
	if _, err := NewUserWordStatus(userID, uuid.Nil, now); err != ErrEmptyStatusWordID {
		t.Errorf("nil word ID: err = %v, want ErrEmptyStatusWordID", err)
	}
}

// A row with zero reps has no trustworthy card fields, so Card returns a
// fresh card due now instead of the stored zeros.
func TestUserWordStatusCardFreshWhenUnreviewed(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	status := &UserWordStatus{
		UserID: uuid.New(),
		WordID: uuid.New(),
		Status: WordStatusNew,
		// Reps is zero; stored card fields are stale zeros.
	}

	card := status.Card(now)
	if card.State != srs.StateNew {
		t.Errorf("State = %v, want %v", card.State, srs.StateNew)
	}
	if !card.Due.Equal(now) {
		t.Errorf("Due = %v, want %v", card.Due, now)
	}
}

func TestUserWordStatusCardRoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lastReview := now.AddDate(0, 0, -3)

	original := srs.Card{
		Due:           now.AddDate(0, 0, 4),
		Stability:     7.5,
		Difficulty:    5.2,
		ElapsedDays:   3,
		ScheduledDays: 4,
		Reps:          5,
		Lapses:        1,
		State:         srs.StateReview,
		LastReview:    lastReview,
	}

	status := &UserWordStatus{
		UserID: uuid.New(),
		WordID: uuid.New(),
		Status: WordStatusLearning,
	}
	status.SetCard(original)

	if status.LastReview == nil || !status.LastReview.Equal(lastReview) {
		t.Errorf("LastReview = %v, want %v", status.LastReview, lastReview)
	}

	restored := status.Card(now)
	if restored != original {
		t.Errorf("round trip changed card: %+v, want %+v", restored, original)
	}
}

func TestUserWordStatusSetCardClearsLastReview(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lastReview := now

	status := &UserWordStatus{
		UserID:     uuid.New(),
		WordID:     uuid.New(),
		Status:     WordStatusLearning,
		LastReview: &lastReview,
	}

	status.SetCard(srs.NewCard(now))
	if status.LastReview != nil {
		t.Errorf("LastReview = %v, want nil after fresh card", status.LastReview)
	}
}

func TestUserWordStatusValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		modify      func(*UserWordStatus)
		expectedErr error
	}{
		{
			name:        "valid status passes",
			modify:      func(s *UserWordStatus) {},
			expectedErr: nil,
		},
		{
			name:        "invalid status value",
			modify:      func(s *UserWordStatus) { s.Status = WordStatus("forgotten") },
			expectedErr: ErrInvalidWordStatus,
		},
		{
			name:        "negative error count",
			modify:      func(s *UserWordStatus) { s.ErrorCount = -1 },
			expectedErr: ErrNegativeErrorCount,
		},
		{
			name:        "negative stability",
			modify:      func(s *UserWordStatus) { s.Stability = -0.1 },
			expectedErr: ErrNegativeStability,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status := &UserWordStatus{
				UserID: uuid.New(),
				WordID: uuid.New(),
				Status: WordStatusLearning,
			}
			tc.modify(status)

			err := status.Validate()
			if err != tc.expectedErr {
				t.Errorf("Validate() = %v, want %v", err, tc.expectedErr)
			}
		})
	}
}
