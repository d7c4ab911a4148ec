// Package testdb connects integration tests to a real PostgreSQL database.
//
// Tests opt in through the PARLO_TEST_DATABASE_URL environment variable and
// skip themselves when it is unset, so a plain test run stays hermetic. Open
// applies the embedded schema migrations before handing out the connection,
// and WithTx wraps a test in a transaction that is rolled back afterwards,
// so tests leave no rows behind and can safely share one database:
//
//	func TestStore(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        store := postgres.NewPostgresProgressStore(tx, nil)
//	        // exercise the store; the rollback discards all writes
//	    })
//	}
package testdb
