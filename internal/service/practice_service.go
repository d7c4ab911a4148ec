package service

import (
	"context"
	"log/slog"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/domain/match"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
)

// PracticeService provides pronunciation practice operations: scoring a
// recognizer transcription against a target phrase and assigning a feedback
// tier.
type PracticeService interface {
	// EvaluateAttempt scores a pronunciation attempt against the target
	// phrase carried in the attempt itself.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - attempt: The target phrase plus the recognizer's primary transcription
	//     and ranked alternatives
	//
	// Returns:
	//   - (*domain.MatchResult, nil): The score, feedback tier, and normalized target
	//   - (nil, domain.ErrEmptyAttemptTarget): If the attempt has no target phrase
	//   - (nil, error): Any other error, wrapped in a ServiceError
	//
	// Error Handling:
	//   - Returns domain.ErrEmptyAttemptTarget when the target is empty
	//   - Scoring errors are logged and wrapped with appropriate service-level errors
	//
	// Scoring is deterministic and does not touch any stored state.
	EvaluateAttempt(ctx context.Context, attempt *domain.PronunciationAttempt) (*domain.MatchResult, error)

	// EvaluateCard scores a pronunciation attempt against a catalog card's
	// term. The card's term becomes the target phrase.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include correlation ID and cancellation
	//   - cardID: ID of the catalog card being practiced
	//   - spokenPrimary: The recognizer's most confident transcription
	//   - alternatives: Lower ranked transcriptions, in recognizer order
	//
	// Returns:
	//   - (*domain.MatchResult, nil): The score, feedback tier, and normalized target
	//   - (nil, domain.ErrCardNotFound): If no catalog card has the given ID
	//   - (nil, error): Any other error, wrapped in a ServiceError
	//
	// Error Handling:
	//   - Returns domain.ErrCardNotFound when the card ID is unknown
	//   - Scoring errors are logged and wrapped with appropriate service-level errors
	EvaluateCard(
		ctx context.Context,
		cardID string,
		spokenPrimary string,
		alternatives []string,
	) (*domain.MatchResult, error)
}

// practiceServiceImpl implements the PracticeService interface.
type practiceServiceImpl struct {
	catalog *catalog.Catalog
	matcher match.Matcher
	logger  *slog.Logger
}

// Verify interface implementation at compile time.
var _ PracticeService = (*practiceServiceImpl)(nil)

// NewPracticeService creates a new PracticeService with the given dependencies.
// It panics if catalog or matcher is nil. If logger is nil, slog.Default() is used.
func NewPracticeService(
	cardCatalog *catalog.Catalog,
	matcher match.Matcher,
	logger *slog.Logger,
) PracticeService {
	if cardCatalog == nil {
		panic("cardCatalog cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &practiceServiceImpl{
		catalog: cardCatalog,
		matcher: matcher,
		logger:  logger.With(slog.String("component", "practice_service")),
	}
}

// EvaluateAttempt implements PracticeService.EvaluateAttempt.
func (s *practiceServiceImpl) EvaluateAttempt(
	ctx context.Context,
	attempt *domain.PronunciationAttempt,
) (*domain.MatchResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if attempt == nil {
		log.Warn("nil pronunciation attempt submitted")
		return nil, NewEvaluateAttemptError("attempt cannot be nil", match.ErrNilAttempt)
	}

	// Spoken transcriptions never reach the logs; only the target does.
	log.Debug("evaluating pronunciation attempt",
		slog.String("target", attempt.Target),
		slog.Int("alternative_count", len(attempt.Alternatives)))

	if err := attempt.Validate(); err != nil {
		log.Warn("invalid pronunciation attempt",
			slog.String("error", err.Error()))
		return nil, err
	}

	result, err := s.matcher.Evaluate(attempt)
	if err != nil {
		log.Error("failed to evaluate pronunciation attempt",
			slog.String("error", err.Error()),
			slog.String("target", attempt.Target))
		return nil, NewEvaluateAttemptError("scoring failed", err)
	}

	log.Debug("pronunciation attempt evaluated",
		slog.String("target", attempt.Target),
		slog.Int("score", result.Score),
		slog.String("tier", string(result.Tier)))

	return result, nil
}

// EvaluateCard implements PracticeService.EvaluateCard.
func (s *practiceServiceImpl) EvaluateCard(
	ctx context.Context,
	cardID string,
	spokenPrimary string,
	alternatives []string,
) (*domain.MatchResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("evaluating pronunciation for card",
		slog.String("card_id", cardID))

	card, ok := s.catalog.Get(cardID)
	if !ok {
		log.Warn("card not found for practice",
			slog.String("card_id", cardID))
		return nil, domain.ErrCardNotFound
	}

	attempt, err := domain.NewPronunciationAttempt(card.Term, spokenPrimary, alternatives)
	if err != nil {
		log.Error("failed to build attempt from card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID))
		return nil, NewEvaluateCardError("invalid card term", err)
	}

	result, err := s.matcher.Evaluate(attempt)
	if err != nil {
		log.Error("failed to evaluate pronunciation for card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID))
		return nil, NewEvaluateCardError("scoring failed", err)
	}

	log.Debug("card pronunciation evaluated",
		slog.String("card_id", cardID),
		slog.Int("score", result.Score),
		slog.String("tier", string(result.Tier)))

	return result, nil
}
