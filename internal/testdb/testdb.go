package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/parlo-app/parlo-api/internal/platform/postgres/migrations"
)

// EnvDatabaseURL names the environment variable holding the connection URL
// of the integration test database.
const EnvDatabaseURL = "PARLO_TEST_DATABASE_URL"

// URL returns the integration test database URL, or the empty string when
// no test database is configured.
func URL() string {
	return os.Getenv(EnvDatabaseURL)
}

// ShouldSkip reports whether database integration tests should be skipped
// because no test database is configured.
func ShouldSkip() bool {
	return URL() == ""
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Open connects to the integration test database and ensures the schema is
// migrated up. The test is skipped when EnvDatabaseURL is unset and fails
// when it is set but the database is unreachable. The connection is closed
// when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkip() {
		t.Skipf("set %s to run database integration tests", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", URL())
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("pinging test database: %v", err)
	}

	if err := migrateUp(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

// migrateUp applies the embedded migrations once per test process. Later
// calls reuse the first outcome, so every test sees the same schema.
func migrateUp(db *sql.DB) error {
	migrateOnce.Do(func() {
		goose.SetLogger(nopGooseLogger{})
		goose.SetBaseFS(migrations.FS)
		goose.SetTableName(migrations.TableName)
		if err := goose.SetDialect("postgres"); err != nil {
			migrateErr = fmt.Errorf("setting goose dialect: %w", err)
			return
		}
		if err := goose.Up(db, "."); err != nil {
			migrateErr = fmt.Errorf("applying migrations: %w", err)
		}
	})
	return migrateErr
}

// nopGooseLogger silences goose output during tests.
type nopGooseLogger struct{}

func (nopGooseLogger) Printf(string, ...interface{}) {}
func (nopGooseLogger) Fatalf(string, ...interface{}) {}
