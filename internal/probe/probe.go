// Package probe exposes the liveness endpoint pinged by external uptime
// monitors, plus the Prometheus scrape endpoint. Independent of the
// analysis core.
package probe

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the HTTP server answering on the given address.
func NewServer(addr string) *http.Server {
	return &http.Server{Addr: addr, Handler: NewRouter()}
}

// NewRouter builds the probe routes: "/" answers alive, "/metrics" scrapes.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello! I'm alive."))
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
