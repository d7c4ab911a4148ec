package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/parlo-app/parlo-api/internal/domain"
)

// ProgressStore defines the interface for card review progress persistence.
// Version: 1.0
type ProgressStore interface {
	// Get retrieves review progress by the combination of learner ID and card ID.
	// Returns ErrCardProgressNotFound if no progress exists for that pair.
	// A missing row is an expected state: it means the learner has never
	// reviewed the card, and callers should fall back to a default record.
	Get(ctx context.Context, learnerID uuid.UUID, cardID string) (*domain.CardProgress, error)

	// ListByLearner retrieves all progress records for a learner, in no
	// particular order. A learner with no recorded reviews yields an empty
	// slice, not an error.
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*domain.CardProgress, error)

	// Upsert inserts the progress record, or replaces the existing record for
	// the same learner and card combination. It handles domain validation
	// internally and returns validation errors wrapped in ErrInvalidEntity
	// if the record is invalid.
	Upsert(ctx context.Context, progress *domain.CardProgress) error

	// DeleteByLearner removes all progress records for a learner, resetting
	// every card to the unseen state. Deleting a learner with no records is
	// not an error. This operation is permanent and cannot be undone.
	DeleteByLearner(ctx context.Context, learnerID uuid.UUID) error
}
