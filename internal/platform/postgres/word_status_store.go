package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
)

// PostgresUserWordStatusStore implements the store.UserWordStatusStore
// interface using a PostgreSQL database as the storage backend.
type PostgresUserWordStatusStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserWordStatusStore creates a new PostgreSQL implementation of
// the UserWordStatusStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserWordStatusStore(db store.DBTX, logger *slog.Logger) *PostgresUserWordStatusStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserWordStatusStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_word_status_store")),
	}
}

// Ensure PostgresUserWordStatusStore implements store.UserWordStatusStore interface
var _ store.UserWordStatusStore = (*PostgresUserWordStatusStore)(nil)

// Get implements store.UserWordStatusStore.Get.
// Returns store.ErrUserWordStatusNotFound if no row exists for the pair.
func (s *PostgresUserWordStatusStore) Get(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.UserWordStatus, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, word_id, status, due, stability, difficulty,
		       elapsed_days, scheduled_days, reps, lapses, state, last_review,
		       error_count, last_error_at, created_at, updated_at
		FROM user_word_statuses
		WHERE user_id = $1 AND word_id = $2
	`

	var status domain.UserWordStatus
	err := s.db.QueryRowContext(ctx, query, userID, wordID).Scan(
		&status.UserID,
		&status.WordID,
		&status.Status,
		&status.Due,
		&status.Stability,
		&status.Difficulty,
		&status.ElapsedDays,
		&status.ScheduledDays,
		&status.Reps,
		&status.Lapses,
		&status.State,
		&status.LastReview,
		&status.ErrorCount,
		&status.LastErrorAt,
		&status.CreatedAt,
		&status.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserWordStatusNotFound
		}
		log.Error("failed to get user word status",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID.String()))
		return nil, err
	}

	return &status, nil
}

// Upsert implements store.UserWordStatusStore.Upsert.
// It validates the row, then inserts it or replaces the mutable fields of
// an existing (user, word) row.
// Returns store.ErrInvalidEntity when a referenced word does not exist.
func (s *PostgresUserWordStatusStore) Upsert(
	ctx context.Context,
	status *domain.UserWordStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := status.Validate(); err != nil {
		log.Warn("user word status validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", status.UserID.String()),
			slog.String("word_id", status.WordID.String()))
		return err
	}

	query := `
		INSERT INTO user_word_statuses (
			user_id, word_id, status, due, stability, difficulty,
			elapsed_days, scheduled_days, reps, lapses, state, last_review,
			error_count, last_error_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			status = EXCLUDED.status,
			due = EXCLUDED.due,
			stability = EXCLUDED.stability,
			difficulty = EXCLUDED.difficulty,
			elapsed_days = EXCLUDED.elapsed_days,
			scheduled_days = EXCLUDED.scheduled_days,
			reps = EXCLUDED.reps,
			lapses = EXCLUDED.lapses,
			state = EXCLUDED.state,
			last_review = EXCLUDED.last_review,
			error_count = EXCLUDED.error_count,
			last_error_at = EXCLUDED.last_error_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		status.UserID,
		status.WordID,
		status.Status,
		status.Due,
		status.Stability,
		status.Difficulty,
		status.ElapsedDays,
		status.ScheduledDays,
		status.Reps,
		status.Lapses,
		status.State,
		status.LastReview,
		status.ErrorCount,
		status.LastErrorAt,
		status.CreatedAt,
		status.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during user word status upsert",
				slog.String("error", err.Error()),
				slog.String("word_id", status.WordID.String()))
			return fmt.Errorf("%w: word with ID %s not found",
				store.ErrInvalidEntity, status.WordID)
		}

		log.Error("failed to upsert user word status",
			slog.String("error", err.Error()),
			slog.String("user_id", status.UserID.String()),
			slog.String("word_id", status.WordID.String()))
		return err
	}

	return nil
}
