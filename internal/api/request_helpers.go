package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathLearnerID extracts and parses the learner UUID from the URL path.
//
// Parameters:
//   - r: The HTTP request
//
// Returns:
//   - (uuid.UUID, true): The learner's UUID if present and well formed
//   - (uuid.Nil, false): If the parameter is missing or not a UUID
func getPathLearnerID(r *http.Request) (uuid.UUID, bool) {
	pathParam := chi.URLParam(r, "learnerID")
	if pathParam == "" {
		return uuid.Nil, false
	}

	learnerID, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, false
	}

	return learnerID, true
}

// getPathCardID extracts the card ID slug from the URL path.
//
// Parameters:
//   - r: The HTTP request
//
// Returns:
//   - (string, true): The card ID if present
//   - ("", false): If the parameter is missing
func getPathCardID(r *http.Request) (string, bool) {
	cardID := chi.URLParam(r, "cardID")
	if cardID == "" {
		return "", false
	}
	return cardID, true
}
