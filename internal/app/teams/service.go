// Package teams coordinates roster state, color suggestions, and logo
// generation on top of the in-memory store.
package teams

import (
	"context"
	"log/slog"

	"fantasy-logo-studio/internal/colors"
	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/logging"
	"fantasy-logo-studio/internal/providers"
)

// Store defines the contract for holding the session roster.
type Store interface {
	List() []domain.Team
	Get(id string) (domain.Team, bool)
	Replace([]domain.Team)
	Patch(id string, patch domain.TeamPatch) (domain.Team, bool)
}

// RosterLoader fetches and maps a league into team records.
type RosterLoader interface {
	Load(ctx context.Context, leagueID string) ([]domain.Team, error)
}

// Service coordinates team operations using a Store, a RosterLoader, and an
// image provider.
type Service struct {
	store    Store
	loader   RosterLoader
	provider providers.ImageProvider
	logger   *slog.Logger
}

// NewService constructs a Service with the provided dependencies.
func NewService(store Store, loader RosterLoader, provider providers.ImageProvider, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		loader:   loader,
		provider: provider,
		logger:   logger,
	}
}

// LoadLeague replaces the current roster with the league's teams. On failure
// the existing roster is left untouched and no partial list is applied.
func (s *Service) LoadLeague(ctx context.Context, leagueID string) ([]domain.Team, error) {
	teams, err := s.loader.Load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	s.store.Replace(teams)
	return s.store.List(), nil
}

// Teams returns the current roster in load order.
func (s *Service) Teams() []domain.Team {
	return s.store.List()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (domain.Team, bool) {
	return s.store.Get(id)
}

// Patch applies a partial update to one team. Color fields are sanitized so
// the store only ever holds well-formed "#RRGGBB" values.
func (s *Service) Patch(id string, patch domain.TeamPatch) (domain.Team, bool) {
	if patch.Primary != nil {
		sanitized := colors.SanitizeHex(*patch.Primary)
		patch.Primary = &sanitized
	}
	if patch.Secondary != nil {
		sanitized := colors.SanitizeHex(*patch.Secondary)
		patch.Secondary = &sanitized
	}
	return s.store.Patch(id, patch)
}

// Suggest derives the deterministic color pair for a team's current branding.
func (s *Service) Suggest(id string) (primary, secondary string, ok bool) {
	t, ok := s.store.Get(id)
	if !ok {
		return "", "", false
	}
	primary, secondary = colors.For(t.Name, t.Mascot, t.Seed)
	return primary, secondary, true
}

// Generate produces a logo for the given team via the configured provider.
// On success the stored team's logoUrl is patched; on failure the stored
// state is untouched.
func (s *Service) Generate(ctx context.Context, team domain.Team) (string, error) {
	result, err := s.provider.Generate(ctx, team)
	if err != nil {
		return "", err
	}

	if _, ok := s.store.Patch(team.ID, domain.TeamPatch{LogoURL: &result.URL}); !ok {
		// The endpoint accepts teams that were never loaded into this
		// session; generation still succeeds, there is just nothing to patch.
		logging.Info(s.logger, "generated logo for team outside current roster",
			slog.String("team_id", team.ID))
	}
	return result.URL, nil
}
