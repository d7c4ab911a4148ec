package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
)

// withChiParams injects URL parameters into the request context so handlers
// can resolve them with chi.URLParam outside a running router.
func withChiParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// newTestCatalog builds a small in-memory catalog with a known card order.
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

// newTestLogger returns a logger that discards output, keeping test runs quiet.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
