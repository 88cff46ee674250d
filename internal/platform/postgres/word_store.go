package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the
// WordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// GetByID implements store.WordStore.GetByID.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, text, exchange, created_at, updated_at
		FROM words
		WHERE id = $1
	`

	var word domain.Word
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&word.ID,
		&word.Text,
		&word.Exchange,
		&word.CreatedAt,
		&word.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, err
	}

	return &word, nil
}

// GetOccurrencesForSentence implements store.WordStore.GetOccurrencesForSentence.
// It returns the vocabulary edges recorded for the sentence at ingestion
// time, each carrying the word's lemma text and exchange encoding.
func (s *PostgresWordStore) GetOccurrencesForSentence(
	ctx context.Context,
	sentenceID uuid.UUID,
) ([]domain.WordOccurrence, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT w.id, w.text, w.exchange
		FROM sentence_words sw
		JOIN words w ON w.id = sw.word_id
		WHERE sw.sentence_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, sentenceID)
	if err != nil {
		log.Error("failed to query word occurrences",
			slog.String("error", err.Error()),
			slog.String("sentence_id", sentenceID.String()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var occurrences []domain.WordOccurrence
	for rows.Next() {
		var occ domain.WordOccurrence
		if err := rows.Scan(&occ.WordID, &occ.Lemma, &occ.Exchange); err != nil {
			log.Error("failed to scan word occurrence",
				slog.String("error", err.Error()),
				slog.String("sentence_id", sentenceID.String()))
			return nil, err
		}
		occurrences = append(occurrences, occ)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return occurrences, nil
}
