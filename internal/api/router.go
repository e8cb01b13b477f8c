package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-tutor/internal/api/middleware"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(tutor Tutor, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewTraceMiddleware(logger))

	tutorHandler := NewTutorHandler(tutor, logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/explanations", tutorHandler.GenerateExplanations)
		r.Post("/evaluations", tutorHandler.EvaluateAnswer)
		r.Post("/corrections", tutorHandler.CorrectExplanation)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
