package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScanner implements rowScanner over a fixed set of column values.
type fakeScanner struct {
	values []any
	err    error
}

func (f *fakeScanner) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return sql.ErrNoRows
	}
	for i, v := range f.values {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *time.Time:
			*d = v.(time.Time)
		case *sql.NullTime:
			*d = v.(sql.NullTime)
		}
	}
	return nil
}

func TestScanCardProgress(t *testing.T) {
	t.Parallel()

	learnerID := uuid.New()
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	reviewed := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	due := reviewed.AddDate(0, 0, 3)

	scanner := &fakeScanner{values: []any{
		learnerID,
		"good-morning",
		2,
		sql.NullTime{Time: reviewed, Valid: true},
		sql.NullTime{Time: due, Valid: true},
		created,
		reviewed,
	}}

	progress, err := scanCardProgress(scanner)
	require.NoError(t, err)

	assert.Equal(t, learnerID, progress.LearnerID)
	assert.Equal(t, "good-morning", progress.CardID)
	assert.Equal(t, 2, progress.Level)
	assert.Equal(t, reviewed, progress.LastReviewedAt)
	assert.Equal(t, due, progress.DueAt)
	assert.Equal(t, created, progress.CreatedAt)
}

func TestScanCardProgressNullTimestamps(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	scanner := &fakeScanner{values: []any{
		uuid.New(),
		"good-morning",
		0,
		sql.NullTime{},
		sql.NullTime{},
		created,
		created,
	}}

	progress, err := scanCardProgress(scanner)
	require.NoError(t, err)

	// NULL review timestamps come back as the zero time, which marks the
	// card as unseen and due immediately.
	assert.True(t, progress.LastReviewedAt.IsZero())
	assert.True(t, progress.DueAt.IsZero())
	assert.False(t, progress.Reviewed())
}

func TestScanCardProgressError(t *testing.T) {
	t.Parallel()

	scanner := &fakeScanner{err: sql.ErrNoRows}
	_, err := scanCardProgress(scanner)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestNullableTime(t *testing.T) {
	t.Parallel()

	assert.False(t, nullableTime(time.Time{}).Valid)

	stamp := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	nt := nullableTime(stamp)
	assert.True(t, nt.Valid)
	assert.Equal(t, stamp, nt.Time)
}

func TestNullableTimeNormalizesToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2025, 6, 10, 10, 0, 0, 0, loc)

	nt := nullableTime(local)
	assert.True(t, nt.Valid)
	assert.Equal(t, time.UTC, nt.Time.Location())
	assert.True(t, nt.Time.Equal(local))
}

func TestTimeOrZero(t *testing.T) {
	t.Parallel()

	assert.True(t, timeOrZero(sql.NullTime{}).IsZero())

	stamp := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, stamp, timeOrZero(sql.NullTime{Time: stamp, Valid: true}))
}
