package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// WithTx runs fn inside a transaction that is rolled back when fn returns.
// Stores accept a transaction wherever they accept a connection, so a test
// can write freely and the rollback discards everything.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("beginning test transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("rolling back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
