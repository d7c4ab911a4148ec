package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/parlo-app/parlo-api/internal/api"
	apiMiddleware "github.com/parlo-app/parlo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	// Create API handlers using the application's services
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	catalogHandler := api.NewCatalogHandler(app.cardCatalog, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Pronunciation evaluation
		r.Post("/attempts/evaluate", practiceHandler.EvaluateAttempt)

		// Per-learner review endpoints
		r.Route("/learners/{learnerID}", func(r chi.Router) {
			r.Get("/cards/due", reviewHandler.GetDueCards)
			r.Post("/cards/{cardID}/review", reviewHandler.SubmitReview)
			r.Get("/cards/{cardID}/progress", reviewHandler.GetCardProgress)
			r.Get("/summary", reviewHandler.GetSummary)
			r.Delete("/progress", reviewHandler.ResetProgress)
		})

		// Vocabulary catalog endpoints
		r.Get("/catalog/cards", catalogHandler.ListCards)
		r.Get("/catalog/cards/{cardID}", catalogHandler.GetCard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
