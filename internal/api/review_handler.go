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

// ReviewHandler handles spaced repetition HTTP requests
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
// It panics if reviewService is nil. If logger is nil, slog.Default() is used.
func NewReviewHandler(
	reviewService service.ReviewService,
	logger *slog.Logger,
) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// SubmitReview handles POST /api/learners/{learnerID}/cards/{cardID}/review
// requests. It records a recall rating and returns the rescheduled progress.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	learnerID, ok := getPathLearnerID(r)
	if !ok {
		log.Warn("invalid learner ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID")
		return
	}

	cardID, ok := getPathCardID(r)
	if !ok {
		log.Warn("card ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)),
			slog.String("learner_id", learnerID.String()),
			slog.String("card_id", cardID))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	progress, err := h.reviewService.SubmitReview(
		r.Context(), learnerID, cardID, domain.Rating(req.Rating))
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to record review"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("review recorded",
		slog.String("learner_id", learnerID.String()),
		slog.String("card_id", cardID),
		slog.Int("level", progress.Level))
	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}

// GetDueCards handles GET /api/learners/{learnerID}/cards/due requests.
// It returns the cards the learner should review now, in review order.
// A learner with nothing due receives an empty list, not an error.
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	learnerID, ok := getPathLearnerID(r)
	if !ok {
		log.Warn("invalid learner ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID")
		return
	}

	cards, err := h.reviewService.GetDueCards(r.Context(), learnerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get due cards", err)
		return
	}

	log.Debug("due cards returned",
		slog.String("learner_id", learnerID.String()),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCardProgress handles GET /api/learners/{learnerID}/cards/{cardID}/progress
// requests. Unreviewed cards yield a fresh level-zero record with status 200.
func (h *ReviewHandler) GetCardProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	learnerID, ok := getPathLearnerID(r)
	if !ok {
		log.Warn("invalid learner ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID")
		return
	}

	cardID, ok := getPathCardID(r)
	if !ok {
		log.Warn("card ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	progress, err := h.reviewService.GetCardProgress(r.Context(), learnerID, cardID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get card progress"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}

// GetSummary handles GET /api/learners/{learnerID}/summary requests.
// It returns aggregate progress counts across the whole catalog.
func (h *ReviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	learnerID, ok := getPathLearnerID(r)
	if !ok {
		log.Warn("invalid learner ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID")
		return
	}

	summary, err := h.reviewService.GetSummary(r.Context(), learnerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get progress summary", err)
		return
	}

	log.Debug("summary returned",
		slog.String("learner_id", learnerID.String()),
		slog.Int("seen_count", summary.SeenCount))
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// ResetProgress handles DELETE /api/learners/{learnerID}/progress requests.
// It removes every progress record for the learner and returns 204.
func (h *ReviewHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	learnerID, ok := getPathLearnerID(r)
	if !ok {
		log.Warn("invalid learner ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID")
		return
	}

	if err := h.reviewService.ResetProgress(r.Context(), learnerID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to reset progress", err)
		return
	}

	log.Debug("progress reset",
		slog.String("learner_id", learnerID.String()))
	w.WriteHeader(http.StatusNoContent)
}
