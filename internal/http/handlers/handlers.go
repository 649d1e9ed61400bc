// Package handlers wires HTTP routes to the team service.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"fantasy-logo-studio/internal/domain"
)

// TeamService is the slice of the application service the handlers depend on.
type TeamService interface {
	LoadLeague(ctx context.Context, leagueID string) ([]domain.Team, error)
	Teams() []domain.Team
	Patch(id string, patch domain.TeamPatch) (domain.Team, bool)
	Suggest(id string) (primary, secondary string, ok bool)
	Generate(ctx context.Context, team domain.Team) (string, error)
}

// Handler serves the JSON API.
type Handler struct {
	svc    TeamService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc TeamService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness for traffic. The service has no warm-up phase, so
// ready mirrors health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// MethodNotAllowed is the router-wide handler for unsupported verbs.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = r
	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
