package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/domain/srs"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
	"github.com/parlo-app/parlo-api/internal/store"
)

// ReviewService provides spaced repetition operations over the vocabulary
// catalog: recording review ratings, selecting due cards, and reporting a
// learner's progress.
type ReviewService interface {
	// SubmitReview records a recall rating for a card and reschedules it.
	//
	// Cards the learner has never reviewed start from a fresh level-zero
	// record, so the first review of any catalog card needs no prior setup.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - learnerID: UUID of the learner submitting the review
	//   - cardID: ID of the catalog card being reviewed
	//   - rating: Recall rating from 1 (forgot) to 5 (instant recall)
	//
	// Returns:
	//   - (*domain.CardProgress, nil): The updated progress after rescheduling
	//   - (nil, domain.ErrInvalidRating): If the rating is outside 1 to 5
	//   - (nil, domain.ErrCardNotFound): If no catalog card has the given ID
	//   - (nil, error): Any other error, typically from the store, wrapped in a ServiceError
	//
	// Error Handling:
	//   - Returns domain.ErrInvalidRating when the rating is out of range
	//   - Returns domain.ErrCardNotFound when the card ID is unknown
	//   - Store errors are logged and wrapped with appropriate service-level errors
	//
	// Callers must not submit concurrent reviews for the same learner and
	// card; later writes would overwrite earlier ones.
	SubmitReview(
		ctx context.Context,
		learnerID uuid.UUID,
		cardID string,
		rating domain.Rating,
	) (*domain.CardProgress, error)

	// GetDueCards returns the cards the learner should review now, unseen
	// cards first, then seen cards by ascending level, ties in catalog order.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - learnerID: UUID of the learner requesting cards
	//
	// Returns:
	//   - ([]domain.VocabularyCard, nil): Due cards in review order; empty
	//     slice when nothing is due
	//   - (nil, error): Any other error, typically from the store, wrapped in a ServiceError
	GetDueCards(ctx context.Context, learnerID uuid.UUID) ([]domain.VocabularyCard, error)

	// GetCardProgress returns the learner's progress for one card. Cards the
	// learner has never reviewed yield a fresh level-zero record rather than
	// an error.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - learnerID: UUID of the learner
	//   - cardID: ID of the catalog card
	//
	// Returns:
	//   - (*domain.CardProgress, nil): The stored progress, or a fresh
	//     level-zero record if the card has never been reviewed
	//   - (nil, domain.ErrCardNotFound): If no catalog card has the given ID
	//   - (nil, error): Any other error, typically from the store, wrapped in a ServiceError
	GetCardProgress(
		ctx context.Context,
		learnerID uuid.UUID,
		cardID string,
	) (*domain.CardProgress, error)

	// GetSummary returns aggregate progress counts for the learner across
	// the whole catalog.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - learnerID: UUID of the learner
	//
	// Returns:
	//   - (srs.Summary, nil): Total, seen, learned, mastered, and due counts
	//   - (srs.Summary{}, error): Any other error, typically from the store,
	//     wrapped in a ServiceError
	GetSummary(ctx context.Context, learnerID uuid.UUID) (srs.Summary, error)

	// ResetProgress deletes all of the learner's progress records, returning
	// every card to the unseen state. Resetting a learner with no records is
	// not an error.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - learnerID: UUID of the learner
	//
	// Returns:
	//   - nil: All records removed
	//   - error: Any other error, typically from the store, wrapped in a ServiceError
	ResetProgress(ctx context.Context, learnerID uuid.UUID) error
}

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	catalog       *catalog.Catalog
	progressStore store.ProgressStore
	srsService    srs.Service
	logger        *slog.Logger
}

// Verify interface implementation at compile time.
var _ ReviewService = (*reviewServiceImpl)(nil)

// NewReviewService creates a new ReviewService with the given dependencies.
// It panics if catalog, progressStore, or srsService is nil. If logger is
// nil, slog.Default() is used.
func NewReviewService(
	cardCatalog *catalog.Catalog,
	progressStore store.ProgressStore,
	srsService srs.Service,
	logger *slog.Logger,
) ReviewService {
	if cardCatalog == nil {
		panic("cardCatalog cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		catalog:       cardCatalog,
		progressStore: progressStore,
		srsService:    srsService,
		logger:        logger.With(slog.String("component", "review_service")),
	}
}

// SubmitReview implements ReviewService.SubmitReview.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
	rating domain.Rating,
) (*domain.CardProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("submitting card review",
		slog.String("learner_id", learnerID.String()),
		slog.String("card_id", cardID),
		slog.Int("rating", int(rating)))

	if !rating.Valid() {
		log.Warn("invalid review rating",
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID),
			slog.Int("rating", int(rating)))
		return nil, domain.ErrInvalidRating
	}

	if _, ok := s.catalog.Get(cardID); !ok {
		log.Warn("review submitted for unknown card",
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, domain.ErrCardNotFound
	}

	progress, err := s.getOrCreateProgress(ctx, learnerID, cardID)
	if err != nil {
		log.Error("failed to load card progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, NewSubmitReviewError("failed to load card progress", err)
	}

	updated, err := s.srsService.Review(progress, rating, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRating) {
			return nil, err
		}
		log.Error("failed to calculate next review",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, NewSubmitReviewError("failed to calculate next review", err)
	}

	if err := s.progressStore.Upsert(ctx, updated); err != nil {
		log.Error("failed to save card progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, NewSubmitReviewError("failed to save card progress", err)
	}

	log.Debug("card review recorded",
		slog.String("learner_id", learnerID.String()),
		slog.String("card_id", cardID),
		slog.Int("level", updated.Level),
		slog.Time("due_at", updated.DueAt))

	return updated, nil
}

// GetDueCards implements ReviewService.GetDueCards.
func (s *reviewServiceImpl) GetDueCards(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]domain.VocabularyCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("selecting due cards",
		slog.String("learner_id", learnerID.String()))

	progressByCard, err := s.loadProgressByCard(ctx, learnerID)
	if err != nil {
		log.Error("failed to load learner progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()))
		return nil, NewDueCardsError("failed to load learner progress", err)
	}

	due := s.srsService.DueCards(s.catalog.Cards(), progressByCard, time.Now().UTC())

	log.Debug("due cards selected",
		slog.String("learner_id", learnerID.String()),
		slog.Int("due_count", len(due)))

	return due, nil
}

// GetCardProgress implements ReviewService.GetCardProgress.
func (s *reviewServiceImpl) GetCardProgress(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
) (*domain.CardProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, ok := s.catalog.Get(cardID); !ok {
		log.Warn("progress requested for unknown card",
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, domain.ErrCardNotFound
	}

	progress, err := s.getOrCreateProgress(ctx, learnerID, cardID)
	if err != nil {
		log.Error("failed to load card progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		return nil, NewCardProgressError("failed to load card progress", err)
	}

	return progress, nil
}

// GetSummary implements ReviewService.GetSummary.
func (s *reviewServiceImpl) GetSummary(
	ctx context.Context,
	learnerID uuid.UUID,
) (srs.Summary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	progressByCard, err := s.loadProgressByCard(ctx, learnerID)
	if err != nil {
		log.Error("failed to load learner progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()))
		return srs.Summary{}, NewSummaryError("failed to load learner progress", err)
	}

	summary := s.srsService.Summarize(s.catalog.Cards(), progressByCard, time.Now().UTC())

	log.Debug("progress summarized",
		slog.String("learner_id", learnerID.String()),
		slog.Int("seen_count", summary.SeenCount),
		slog.Int("due_count", summary.DueCount))

	return summary, nil
}

// ResetProgress implements ReviewService.ResetProgress.
func (s *reviewServiceImpl) ResetProgress(ctx context.Context, learnerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.progressStore.DeleteByLearner(ctx, learnerID); err != nil {
		log.Error("failed to reset learner progress",
			slog.String("error", err.Error()),
			slog.String("learner_id", learnerID.String()))
		return NewResetProgressError("failed to delete progress records", err)
	}

	log.Info("learner progress reset",
		slog.String("learner_id", learnerID.String()))

	return nil
}

// getOrCreateProgress loads the learner's stored progress for a card,
// falling back to a fresh level-zero record when none exists. The fallback
// record is not persisted; it only becomes durable once a review is saved.
func (s *reviewServiceImpl) getOrCreateProgress(
	ctx context.Context,
	learnerID uuid.UUID,
	cardID string,
) (*domain.CardProgress, error) {
	progress, err := s.progressStore.Get(ctx, learnerID, cardID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, store.ErrCardProgressNotFound) {
		return nil, err
	}

	return domain.NewCardProgress(learnerID, cardID)
}

// loadProgressByCard fetches all of the learner's progress records and
// indexes them by card ID for the scheduling service.
func (s *reviewServiceImpl) loadProgressByCard(
	ctx context.Context,
	learnerID uuid.UUID,
) (map[string]*domain.CardProgress, error) {
	records, err := s.progressStore.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	progressByCard := make(map[string]*domain.CardProgress, len(records))
	for _, record := range records {
		progressByCard[record.CardID] = record
	}

	return progressByCard, nil
}
