package srs

import (
	"errors"
	"time"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// Common errors
var (
	ErrNilProgress = errors.New("card progress cannot be nil")
)

// Summary aggregates a learner's standing across the whole catalog.
type Summary struct {
	TotalCards    int `json:"total_cards"`
	SeenCount     int `json:"seen_count"`
	LearnedCount  int `json:"learned_count"`
	MasteredCount int `json:"mastered_count"`
	DueCount      int `json:"due_count"`
}

// Service defines the interface for spaced repetition scheduling operations
type Service interface {
	// Review computes new progress for a card based on a recall rating
	Review(
		progress *domain.CardProgress,
		rating domain.Rating,
		now time.Time,
	) (*domain.CardProgress, error)

	// DueCards selects and orders the cards a learner should review now
	DueCards(
		cards []domain.VocabularyCard,
		progress map[string]*domain.CardProgress,
		now time.Time,
	) []domain.VocabularyCard

	// Summarize computes aggregate progress counts across the catalog
	Summarize(
		cards []domain.VocabularyCard,
		progress map[string]*domain.CardProgress,
		now time.Time,
	) Summary
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Review implements the Service interface for recording a recall rating
func (s *defaultService) Review(
	progress *domain.CardProgress,
	rating domain.Rating,
	now time.Time,
) (*domain.CardProgress, error) {
	// Validate inputs
	if progress == nil {
		return nil, ErrNilProgress
	}

	if !rating.Valid() {
		return nil, domain.ErrInvalidRating
	}

	// Use the pure calculation function to get new progress
	newProgress := calculateNextProgress(progress, rating, now, s.params)

	return newProgress, nil
}

// DueCards implements the Service interface for due card selection
func (s *defaultService) DueCards(
	cards []domain.VocabularyCard,
	progress map[string]*domain.CardProgress,
	now time.Time,
) []domain.VocabularyCard {
	return selectDueCards(cards, progress, now)
}

// Summarize implements the Service interface for progress aggregation
func (s *defaultService) Summarize(
	cards []domain.VocabularyCard,
	progress map[string]*domain.CardProgress,
	now time.Time,
) Summary {
	return summarize(cards, progress, now)
}
