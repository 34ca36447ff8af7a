package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-sequence-api/internal/config"
	"go-sequence-api/internal/handlers"
	"go-sequence-api/internal/observability"
	"go-sequence-api/internal/sequence"
)

func NewRouter(cfg *config.Config) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	sequence.RegisterRoutes(r, cfg.Sequence.MaxTerms)

	return r
}
