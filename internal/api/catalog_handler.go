package api

import (
	"log/slog"
	"net/http"

	"github.com/parlo-app/parlo-api/internal/api/shared"
	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
)

// CatalogHandler serves the static vocabulary catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
// It panics if cardCatalog is nil. If logger is nil, slog.Default() is used.
func NewCatalogHandler(cardCatalog *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	if cardCatalog == nil {
		panic("cardCatalog cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogHandler{
		catalog: cardCatalog,
		logger:  logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListCards handles GET /api/catalog/cards requests.
// Optional query parameters category and difficulty narrow the listing;
// both must be valid enum values when present.
func (h *CatalogHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		log.Warn("unknown category filter", slog.String("category", string(category)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown category")
		return
	}

	difficulty := domain.Difficulty(r.URL.Query().Get("difficulty"))
	if difficulty != "" && !difficulty.Valid() {
		log.Warn("unknown difficulty filter", slog.String("difficulty", string(difficulty)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown difficulty")
		return
	}

	cards := h.catalog.Filter(category, difficulty)

	log.Debug("catalog listed",
		slog.String("category", string(category)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCard handles GET /api/catalog/cards/{cardID} requests.
func (h *CatalogHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := getPathCardID(r)
	if !ok {
		log.Warn("card ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	card, ok := h.catalog.Get(cardID)
	if !ok {
		log.Warn("card not found", slog.String("card_id", cardID))
		shared.RespondWithError(w, r, http.StatusNotFound, "Card not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}
