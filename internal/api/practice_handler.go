package api

import (
	"log/slog"
	"net/http"

	"github.com/parlo-app/parlo-api/internal/api/shared"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
	"github.com/parlo-app/parlo-api/internal/redact"
	"github.com/parlo-app/parlo-api/internal/service"
)

// PracticeHandler handles pronunciation practice HTTP requests
type PracticeHandler struct {
	practiceService service.PracticeService
	logger          *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
// It panics if practiceService is nil. If logger is nil, slog.Default() is used.
func NewPracticeHandler(
	practiceService service.PracticeService,
	logger *slog.Logger,
) *PracticeHandler {
	if practiceService == nil {
		panic("practiceService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "practice_handler")),
	}
}

// EvaluateAttempt handles POST /api/attempts/evaluate requests.
// It scores a recognizer transcription against a target phrase or a catalog
// card and returns the score, feedback tier, and normalized target.
func (h *PracticeHandler) EvaluateAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req EvaluateAttemptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	var (
		result *domain.MatchResult
		err    error
	)
	if req.CardID != "" {
		result, err = h.practiceService.EvaluateCard(
			r.Context(), req.CardID, req.SpokenPrimary, req.Alternatives)
	} else {
		result, err = h.practiceService.EvaluateAttempt(r.Context(), &domain.PronunciationAttempt{
			Target:        req.Target,
			SpokenPrimary: req.SpokenPrimary,
			Alternatives:  req.Alternatives,
		})
	}

	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to evaluate pronunciation"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("pronunciation evaluated",
		slog.String("card_id", req.CardID),
		slog.Int("score", result.Score),
		slog.String("tier", string(result.Tier)))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
