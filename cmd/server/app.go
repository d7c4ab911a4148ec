package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/config"
	"github.com/parlo-app/parlo-api/internal/domain/match"
	"github.com/parlo-app/parlo-api/internal/domain/srs"
	"github.com/parlo-app/parlo-api/internal/platform/postgres"
	"github.com/parlo-app/parlo-api/internal/service"
	"github.com/parlo-app/parlo-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Reference data
	cardCatalog *catalog.Catalog

	// Stores (using interfaces for proper abstraction)
	progressStore store.ProgressStore

	// Domain engines
	matcher    match.Matcher
	srsService srs.Service

	// Service interfaces
	practiceService service.PracticeService
	reviewService   service.ReviewService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Load the vocabulary catalog, from disk if a path is configured,
	// otherwise the copy compiled into the binary.
	var err error
	if cfg.Catalog.Path != "" {
		app.cardCatalog, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		app.cardCatalog, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary catalog: %w", err)
	}
	logger.Info("Vocabulary catalog loaded",
		"cards", app.cardCatalog.Len(),
		"path", cfg.Catalog.Path)

	// Initialize the pronunciation matcher with the configured scoring
	// parameters.
	matchParams := match.NewParams(match.ParamsConfig{
		AlternativeScore:   cfg.Practice.AlternativeScore,
		ContainsFloor:      cfg.Practice.ContainsFloor,
		ContainedFloor:     cfg.Practice.ContainedFloor,
		MinContainedLength: cfg.Practice.MinContainedLength,
		GoodThreshold:      cfg.Practice.GoodThreshold,
		CloseThreshold:     cfg.Practice.CloseThreshold,
		TryAgainThreshold:  cfg.Practice.TryAgainThreshold,
		PhoneticThreshold:  cfg.Practice.PhoneticThreshold,
	})
	if err := matchParams.Validate(); err != nil {
		return nil, fmt.Errorf("invalid practice parameters: %w", err)
	}
	app.matcher = match.NewMatcherWithParams(matchParams)

	// Initialize the review scheduler with the configured interval table.
	srsParams := srs.NewParams(srs.ParamsConfig{
		ReviewIntervalDays: cfg.Review.IntervalDays,
		PassRating:         cfg.Review.PassRating,
	})
	if err := srsParams.Validate(); err != nil {
		return nil, fmt.Errorf("invalid review parameters: %w", err)
	}
	app.srsService = srs.NewServiceWithParams(srsParams)

	// Initialize stores
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)

	// Initialize services
	app.practiceService = service.NewPracticeService(app.cardCatalog, app.matcher, logger)
	app.reviewService = service.NewReviewService(
		app.cardCatalog,
		app.progressStore,
		app.srsService,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Close database connection
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
