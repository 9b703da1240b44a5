// Package httptransport assembles the public HTTP surface: middleware,
// operational endpoints, and the blog API.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkwell/pkg/platform/middleware/metadata"
	"inkwell/pkg/platform/middleware/requestid"
	"inkwell/pkg/platform/middleware/requesttime"
)

// Registrar mounts a feature's endpoints on the router; feature handler
// packages implement it.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter builds the router with the shared middleware chain, the
// operational endpoints, and every registered feature.
func NewRouter(features ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, feature := range features {
		feature.Register(r)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
