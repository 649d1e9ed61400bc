package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/logging"
)

// TeamsResponse wraps the roster list.
type TeamsResponse struct {
	Teams []domain.Team `json:"teams"`
}

// TeamResponse wraps a single team.
type TeamResponse struct {
	Team domain.Team `json:"team"`
}

// SuggestedColorsResponse carries the deterministic color pair for a team.
type SuggestedColorsResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// LoadLeague imports the league's rosters and users, replacing the current
// team list. On upstream failure nothing is replaced.
func (h *Handler) LoadLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		writeError(w, r, http.StatusBadRequest, "league id is required", h.logger)
		return
	}

	logger := logging.FromContext(r.Context(), h.logger)

	teams, err := h.svc.LoadLeague(r.Context(), leagueID)
	if err != nil {
		logging.Warn(logger, "league load failed",
			slog.String("league_id", leagueID), logging.Err(err))
		writeError(w, r, http.StatusBadGateway, "Failed to fetch league", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, TeamsResponse{Teams: teams})
}

// Teams returns the current roster.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, TeamsResponse{Teams: h.svc.Teams()})
}

// PatchTeam applies a partial update to one team.
func (h *Handler) PatchTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch domain.TeamPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	team, ok := h.svc.Patch(id, patch)
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// SuggestColors returns the deterministic color pair for a team's current
// name, mascot, and seed.
func (h *Handler) SuggestColors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	primary, secondary, ok := h.svc.Suggest(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, SuggestedColorsResponse{Primary: primary, Secondary: secondary})
}
