package sequence

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all sequence endpoints onto the given router under
// the /sequences prefix. maxTerms is the configured term-count bound.
func RegisterRoutes(r chi.Router, maxTerms int) {
	r.Route("/sequences", func(r chi.Router) {
		r.Post("/generate", Generate(maxTerms))
		r.Post("/arithmetic", Arithmetic(maxTerms))
		r.Post("/geometric", Geometric(maxTerms))
	})
}
