package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/echolearn/echo-api/internal/config"
	"github.com/echolearn/echo-api/internal/domain/srs"
	"github.com/echolearn/echo-api/internal/platform/postgres"
	"github.com/echolearn/echo-api/internal/service/auth"
	"github.com/echolearn/echo-api/internal/service/review"
	"github.com/echolearn/echo-api/internal/store"
)

// tokenLifetime applies to tokens minted by this service's test tooling.
// Production tokens come from the auth service with its own lifetime.
const tokenLifetime = 24 * time.Hour

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	sentenceStore store.SentenceStore
	wordStore     store.WordStore
	statusStore   store.UserWordStatusStore
	progressStore store.PracticeProgressStore
	statStore     store.StudyStatStore

	// Service interfaces
	jwtService       auth.JWTService
	scheduler        srs.Scheduler
	lifecycle        *review.WordLifecycle
	dictationService review.DictationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth.JWTSecret, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	app.sentenceStore = postgres.NewPostgresSentenceStore(db, logger)
	app.wordStore = postgres.NewPostgresWordStore(db, logger)
	app.statusStore = postgres.NewPostgresUserWordStatusStore(db, logger)
	app.progressStore = postgres.NewPostgresPracticeProgressStore(db, logger)
	app.statStore = postgres.NewPostgresStudyStatStore(db, logger)

	// Scheduling constants start from the defaults and take deployment
	// overrides from configuration.
	params := srs.NewDefaultParams()
	params.MasteryStability = cfg.SRS.MasteryStabilityDays
	params.DesiredRetention = cfg.SRS.DesiredRetention
	params.RelearnMinutes = cfg.SRS.RelearnMinutes
	app.scheduler = srs.NewSchedulerWithParams(params)

	app.lifecycle = review.NewWordLifecycle(
		app.statusStore,
		app.scheduler,
		cfg.SRS.MasteryStabilityDays,
		logger,
	)

	app.dictationService = review.NewDictationService(
		app.sentenceStore,
		app.wordStore,
		app.progressStore,
		app.statStore,
		app.lifecycle,
		logger,
	)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
