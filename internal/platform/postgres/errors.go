package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/parlo-app/parlo-api/internal/store"
)

// Constraint violation codes from the PostgreSQL error code table.
const (
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
	notNullViolationCode = "23502"
)

// MapError translates driver-level errors into the store package's
// sentinel errors so callers can branch with errors.Is without importing
// pgconn. The original error stays wrapped for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case checkViolationCode:
		return fmt.Errorf("%w: check constraint %s: %v",
			store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case notNullViolationCode:
		return fmt.Errorf("%w: null value in column %s: %v",
			store.ErrInvalidEntity, pgErr.ColumnName, err)
	}

	// Codes without a sentinel mapping pass through unchanged.
	return err
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation, however deeply wrapped.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsNotFoundError reports whether err represents a missing row, either as
// raw sql.ErrNoRows or as anything wrapping store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}
