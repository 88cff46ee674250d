package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
)

// PostgresPracticeProgressStore implements the store.PracticeProgressStore
// interface using a PostgreSQL database as the storage backend.
type PostgresPracticeProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPracticeProgressStore creates a new PostgreSQL implementation
// of the PracticeProgressStore interface. It accepts a database connection
// or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPracticeProgressStore(db store.DBTX, logger *slog.Logger) *PostgresPracticeProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPracticeProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "practice_progress_store")),
	}
}

// Ensure PostgresPracticeProgressStore implements store.PracticeProgressStore interface
var _ store.PracticeProgressStore = (*PostgresPracticeProgressStore)(nil)

// Get implements store.PracticeProgressStore.Get.
// Returns store.ErrProgressNotFound if no row exists for the pair.
func (s *PostgresPracticeProgressStore) Get(
	ctx context.Context,
	userID, sentenceID uuid.UUID,
) (*domain.PracticeProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, sentence_id, score, attempts, duration, created_at, updated_at
		FROM practice_progress
		WHERE user_id = $1 AND sentence_id = $2
	`

	var progress domain.PracticeProgress
	err := s.db.QueryRowContext(ctx, query, userID, sentenceID).Scan(
		&progress.UserID,
		&progress.SentenceID,
		&progress.Score,
		&progress.Attempts,
		&progress.Duration,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get practice progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("sentence_id", sentenceID.String()))
		return nil, err
	}

	return &progress, nil
}

// RecordAttempt implements store.PracticeProgressStore.RecordAttempt.
// The upsert accumulates attempts and duration and keeps the latest score.
func (s *PostgresPracticeProgressStore) RecordAttempt(
	ctx context.Context,
	userID, sentenceID uuid.UUID,
	score, durationSeconds int,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()

	query := `
		INSERT INTO practice_progress (user_id, sentence_id, score, attempts, duration, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $5, $5)
		ON CONFLICT (user_id, sentence_id) DO UPDATE SET
			score = EXCLUDED.score,
			attempts = practice_progress.attempts + 1,
			duration = practice_progress.duration + EXCLUDED.duration,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, userID, sentenceID, score, durationSeconds, now)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: sentence with ID %s not found",
				store.ErrInvalidEntity, sentenceID)
		}

		log.Error("failed to record practice attempt",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("sentence_id", sentenceID.String()))
		return err
	}

	return nil
}

// PostgresStudyStatStore implements the store.StudyStatStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudyStatStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudyStatStore creates a new PostgreSQL implementation of the
// StudyStatStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStudyStatStore(db store.DBTX, logger *slog.Logger) *PostgresStudyStatStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStudyStatStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_stat_store")),
	}
}

// Ensure PostgresStudyStatStore implements store.StudyStatStore interface
var _ store.StudyStatStore = (*PostgresStudyStatStore)(nil)

// AddDuration implements store.StudyStatStore.AddDuration.
func (s *PostgresStudyStatStore) AddDuration(
	ctx context.Context,
	userID uuid.UUID,
	day time.Time,
	durationSeconds int,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO daily_study_stats (user_id, study_date, duration)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, study_date) DO UPDATE SET
			duration = daily_study_stats.duration + EXCLUDED.duration
	`

	_, err := s.db.ExecContext(ctx, query, userID, domain.StudyDay(day), durationSeconds)
	if err != nil {
		log.Error("failed to add study duration",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	return nil
}
