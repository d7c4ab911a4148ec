package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
)

// MockProgressStore mocks the store.ProgressStore interface
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
) (*domain.CardProgress, error) {
	args := m.Called(ctx, learnerID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardProgress), args.Error(1)
}

func (m *MockProgressStore) ListByLearner(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]*domain.CardProgress, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CardProgress), args.Error(1)
}

func (m *MockProgressStore) Upsert(ctx context.Context, progress *domain.CardProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressStore) DeleteByLearner(ctx context.Context, learnerID uuid.UUID) error {
	args := m.Called(ctx, learnerID)
	return args.Error(0)
}

// newTestCatalog builds a small fixed catalog for service tests. Card order
// matters: due-card tests rely on it.
func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cards := []domain.VocabularyCard{
		{
			ID:         "good-morning",
			Term:       "Good morning",
			Meaning:    "A greeting used before noon",
			Category:   domain.CategoryGreetings,
			Difficulty: domain.DifficultyBeginner,
		},
		{
			ID:         "thank-you",
			Term:       "Thank you",
			Meaning:    "An expression of gratitude",
			Category:   domain.CategoryGreetings,
			Difficulty: domain.DifficultyBeginner,
		},
		{
			ID:         "where-is-the-station",
			Term:       "Where is the station",
			Meaning:    "Asking for directions to the station",
			Category:   domain.CategoryTravel,
			Difficulty: domain.DifficultyIntermediate,
		},
	}

	c, err := catalog.New(cards)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// newTestLogger returns a logger that discards all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
