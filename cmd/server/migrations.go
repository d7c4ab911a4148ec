package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/parlo-app/parlo-api/internal/config"
	"github.com/parlo-app/parlo-api/internal/platform/postgres/migrations"
)

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages
// to slog.Error. Unlike the standard Fatalf behavior, this does NOT call
// os.Exit; the error is returned to main which handles the exit.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes the requested migration command against the
// configured database using the migrations embedded in the binary.
func runMigrations(cfg *config.Config, command string) error {
	// Use a correlation ID for all migration logs to allow tracing the
	// entire operation
	correlationID := uuid.New().String()
	migrationLogger := slog.Default().With(
		"correlation_id", correlationID,
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation",
		"operation", fmt.Sprintf("goose %s", command))

	switch command {
	case "up", "down", "reset", "status", "version":
	default:
		return fmt.Errorf(
			"unknown migration command %q: expected up, down, status, version, or reset",
			command,
		)
	}

	dbURL := cfg.Database.URL
	if dbURL == "" {
		migrationLogger.Error("Database URL is empty",
			"resolution", "check PARLO_DATABASE_URL or the config file")
		return fmt.Errorf("database URL is empty: check your configuration")
	}

	// Log the database URL with the password masked
	migrationLogger.Info("Using database URL", "url", maskDatabaseURL(dbURL))

	// Configure goose to use the custom slog logger adapter and the
	// migrations compiled into the binary
	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(migrations.TableName)

	if err := goose.SetDialect("postgres"); err != nil {
		migrationLogger.Error("Failed to set dialect", "error", err)
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// Open a database connection using the database URL
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		migrationLogger.Error("Failed to open database connection", "error", err)
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	// Ensure the database connection is closed when the function returns
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			migrationLogger.Error("Error closing database connection", "error", closeErr)
		}
		migrationLogger.Info("Migration operation completed",
			"operation", fmt.Sprintf("goose %s", command),
			"duration_ms", time.Since(startTime).Milliseconds())
	}()

	// Migrations need far fewer connections than the server
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify database connectivity with a ping
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		migrationLogger.Error("Database ping failed", "error", err)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Execute the requested migration command. The embedded FS is rooted at
	// the migration files themselves, so the directory is ".".
	switch command {
	case "up":
		migrationLogger.Info("Applying pending migrations")
		err = goose.Up(db, ".")
	case "down":
		migrationLogger.Info("Rolling back one migration version")
		err = goose.Down(db, ".")
	case "reset":
		migrationLogger.Info("Resetting all migrations (roll back to zero)")
		err = goose.Reset(db, ".")
	case "status":
		migrationLogger.Info("Checking migration status")
		err = goose.Status(db, ".")
	case "version":
		migrationLogger.Info("Retrieving current migration version")
		err = goose.Version(db, ".")
	}

	if err != nil {
		migrationLogger.Error("Migration command failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	return nil
}

// maskDatabaseURL masks the password in a database URL for safe logging.
func maskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		parsedURL.User = url.UserPassword(username, "****")
		return parsedURL.String()
	}

	return dbURL
}
