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

// PostgresSentenceStore implements the store.SentenceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSentenceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSentenceStore creates a new PostgreSQL implementation of the
// SentenceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSentenceStore(db store.DBTX, logger *slog.Logger) *PostgresSentenceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSentenceStore{
		db:     db,
		logger: logger.With(slog.String("component", "sentence_store")),
	}
}

// Ensure PostgresSentenceStore implements store.SentenceStore interface
var _ store.SentenceStore = (*PostgresSentenceStore)(nil)

// GetWithOwner implements store.SentenceStore.GetWithOwner.
// It joins the sentence to its parent material so ownership can be checked
// without a second query.
// Returns store.ErrSentenceNotFound if the sentence does not exist.
func (s *PostgresSentenceStore) GetWithOwner(
	ctx context.Context,
	id uuid.UUID,
) (*domain.SentenceWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.material_id, s.text, s.edited_text, s.trashed_at,
		       s.created_at, s.updated_at, m.owner_id
		FROM sentences s
		JOIN materials m ON m.id = s.material_id
		WHERE s.id = $1
	`

	var sentence domain.SentenceWithOwner
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sentence.ID,
		&sentence.MaterialID,
		&sentence.Text,
		&sentence.EditedText,
		&sentence.TrashedAt,
		&sentence.CreatedAt,
		&sentence.UpdatedAt,
		&sentence.OwnerID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("sentence not found", slog.String("sentence_id", id.String()))
			return nil, store.ErrSentenceNotFound
		}
		log.Error("failed to get sentence with owner",
			slog.String("error", err.Error()),
			slog.String("sentence_id", id.String()))
		return nil, err
	}

	return &sentence, nil
}
