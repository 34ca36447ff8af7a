package handlers

import "net/http"

// Health handles GET /health — a plain liveness probe, kept out of tracing.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
