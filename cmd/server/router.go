package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/recruit-api/internal/api"
	apiMiddleware "github.com/phrazzld/recruit-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	if len(app.config.Server.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: app.config.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID"},
			MaxAge:         300,
		}))
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	candidateHandler := api.NewCandidateHandler(app.model, app.eventEmitter, app.logger)
	interviewHandler := api.NewInterviewHandler(app.model, app.eventEmitter, time.UTC, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", candidateHandler.ListCandidates)
			r.Post("/", candidateHandler.AddCandidate)
			r.Post("/find", candidateHandler.FindCandidates)
			r.Post("/list", candidateHandler.ListAllCandidates)
			r.Post("/sort", candidateHandler.SortCandidates)
			r.Put("/{index}", candidateHandler.EditCandidate)
			r.Delete("/{index}", candidateHandler.DeleteCandidate)
		})

		r.Route("/interviews", func(r chi.Router) {
			r.Get("/", interviewHandler.ListInterviews)
			r.Post("/", interviewHandler.ScheduleInterview)
			r.Post("/find", interviewHandler.FindInterviews)
			r.Post("/list", interviewHandler.ListAllInterviews)
			r.Delete("/{index}", interviewHandler.DeleteInterview)
		})
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
