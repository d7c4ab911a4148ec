// Package main implements the entry point for the Parlo API server
// which scores learners' pronunciation attempts and schedules their
// vocabulary reviews.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/parlo-app/parlo-api/internal/config"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
)

// main is the entry point for the parlo-api server.
// It initializes configuration, sets up logging, establishes the database
// connection, injects dependencies, and starts the HTTP server. With the
// -migrate flag it runs the requested migration command and exits instead.
func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command and exit (up, down, status, version, reset)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, wires the application together, and either runs
// migrations or serves HTTP until shutdown.
func run(migrateCmd string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Migration commands run against the configured database and exit
	// without starting the server.
	if migrateCmd != "" {
		return runMigrations(cfg, migrateCmd)
	}

	// Establish the database connection
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// Wire the application together
	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		// No application to clean up yet, so close the connection here.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Serve until a shutdown signal arrives
	return app.Run(ctx)
}
