// Package memstore provides in-memory implementations of the store
// interfaces. The implementations are safe for concurrent use and are
// intended for tests, local development, and deployments that do not
// need progress to survive a restart.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/store"
)

// ProgressStore is an in-memory implementation of store.ProgressStore
// backed by a map keyed by learner ID and card ID.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]map[string]domain.CardProgress
}

// Ensure ProgressStore implements the store.ProgressStore interface.
var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates an empty in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		records: make(map[uuid.UUID]map[string]domain.CardProgress),
	}
}

// Get retrieves review progress by learner ID and card ID.
// Returns store.ErrCardProgressNotFound if no progress exists for that pair.
func (s *ProgressStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
) (*domain.CardProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCard, ok := s.records[learnerID]
	if !ok {
		return nil, store.ErrCardProgressNotFound
	}

	record, ok := byCard[cardID]
	if !ok {
		return nil, store.ErrCardProgressNotFound
	}

	// Return a copy so callers cannot mutate the stored record.
	result := record
	return &result, nil
}

// ListByLearner retrieves all progress records for a learner.
// A learner with no recorded reviews yields an empty slice.
func (s *ProgressStore) ListByLearner(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]*domain.CardProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCard := s.records[learnerID]
	results := make([]*domain.CardProgress, 0, len(byCard))
	for _, record := range byCard {
		result := record
		results = append(results, &result)
	}

	return results, nil
}

// Upsert inserts or replaces the progress record for the learner and card
// combination identified by the record itself. The record is validated
// before being stored.
func (s *ProgressStore) Upsert(ctx context.Context, progress *domain.CardProgress) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byCard, ok := s.records[progress.LearnerID]
	if !ok {
		byCard = make(map[string]domain.CardProgress)
		s.records[progress.LearnerID] = byCard
	}

	// Store a copy so later mutations through the caller's pointer do not
	// leak into the store.
	byCard[progress.CardID] = *progress
	return nil
}

// DeleteByLearner removes all progress records for a learner. Deleting a
// learner with no records is a no-op.
func (s *ProgressStore) DeleteByLearner(ctx context.Context, learnerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, learnerID)
	return nil
}
