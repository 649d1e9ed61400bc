// Package http assembles the service router.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fantasy-logo-studio/internal/http/handlers"
	"fantasy-logo-studio/internal/http/middleware"
	"fantasy-logo-studio/internal/metrics"
	"fantasy-logo-studio/web"
)

// NewRouter registers the API, probes, and the embedded UI.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.New(logger, recorder))
	r.Use(chimw.Recoverer)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-logo", h.GenerateLogo)
		r.Get("/league/{leagueID}/teams", h.LoadLeague)
		r.Get("/teams", h.Teams)
		r.Patch("/teams/{id}", h.PatchTeam)
		r.Get("/teams/{id}/colors", h.SuggestColors)
	})

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Handle("/*", web.Handler())

	return r
}
