package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// Get implements store.ProgressStore.Get
// It retrieves review progress by the combination of learner ID and card ID.
// Returns store.ErrCardProgressNotFound if no progress exists for that pair.
func (s *PostgresProgressStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
) (*domain.CardProgress, error) {
	query := `
		SELECT learner_id, card_id, level, last_reviewed_at, due_at, created_at, updated_at
		FROM card_progress
		WHERE learner_id = $1 AND card_id = $2
	`

	row := s.db.QueryRowContext(ctx, query, learnerID, cardID)
	progress, err := scanCardProgress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardProgressNotFound
		}
		s.logger.Error("failed to get card progress",
			"learner_id", learnerID,
			"card_id", cardID,
			"error", err)
		return nil, MapError(err)
	}

	return progress, nil
}

// ListByLearner implements store.ProgressStore.ListByLearner
// It retrieves all progress records for a learner. A learner with no
// recorded reviews yields an empty slice.
func (s *PostgresProgressStore) ListByLearner(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]*domain.CardProgress, error) {
	query := `
		SELECT learner_id, card_id, level, last_reviewed_at, due_at, created_at, updated_at
		FROM card_progress
		WHERE learner_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		s.logger.Error("failed to query card progress by learner",
			"learner_id", learnerID,
			"error", err)
		return nil, MapError(err)
	}
	defer rows.Close()

	records := make([]*domain.CardProgress, 0)
	for rows.Next() {
		progress, err := scanCardProgress(rows)
		if err != nil {
			s.logger.Error("failed to scan card progress row",
				"learner_id", learnerID,
				"error", err)
			return nil, fmt.Errorf("failed to scan card progress row: %w", err)
		}
		records = append(records, progress)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("error iterating card progress rows",
			"learner_id", learnerID,
			"error", err)
		return nil, fmt.Errorf("error iterating card progress rows: %w", err)
	}

	return records, nil
}

// Upsert implements store.ProgressStore.Upsert
// It inserts the progress record, or replaces the existing record for the
// same learner and card combination. The record is validated before being
// written.
func (s *PostgresProgressStore) Upsert(ctx context.Context, progress *domain.CardProgress) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO card_progress (learner_id, card_id, level, last_reviewed_at, due_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (learner_id, card_id) DO UPDATE
		SET level = EXCLUDED.level,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			due_at = EXCLUDED.due_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		progress.LearnerID,
		progress.CardID,
		progress.Level,
		nullableTime(progress.LastReviewedAt),
		nullableTime(progress.DueAt),
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to upsert card progress",
			"learner_id", progress.LearnerID,
			"card_id", progress.CardID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// DeleteByLearner implements store.ProgressStore.DeleteByLearner
// It removes all progress records for a learner. Deleting a learner with
// no records is a no-op, not an error.
func (s *PostgresProgressStore) DeleteByLearner(ctx context.Context, learnerID uuid.UUID) error {
	query := `
		DELETE FROM card_progress
		WHERE learner_id = $1
	`

	_, err := s.db.ExecContext(ctx, query, learnerID)
	if err != nil {
		s.logger.Error("failed to delete card progress",
			"learner_id", learnerID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows, letting a single
// scan helper serve point lookups and list queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCardProgress reads one card_progress row into a domain record.
// Nullable timestamps map to the zero time, which the domain treats as
// "never reviewed" and "due immediately".
func scanCardProgress(row rowScanner) (*domain.CardProgress, error) {
	var progress domain.CardProgress
	var lastReviewedAt, dueAt sql.NullTime

	err := row.Scan(
		&progress.LearnerID,
		&progress.CardID,
		&progress.Level,
		&lastReviewedAt,
		&dueAt,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	progress.LastReviewedAt = timeOrZero(lastReviewedAt)
	progress.DueAt = timeOrZero(dueAt)
	progress.CreatedAt = progress.CreatedAt.UTC()
	progress.UpdatedAt = progress.UpdatedAt.UTC()

	return &progress, nil
}

// nullableTime converts a domain timestamp to its database representation.
// The zero time is stored as NULL.
func nullableTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// timeOrZero converts a database timestamp to its domain representation.
// NULL maps to the zero time.
func timeOrZero(nt sql.NullTime) time.Time {
	if !nt.Valid {
		return time.Time{}
	}
	return nt.Time.UTC()
}
