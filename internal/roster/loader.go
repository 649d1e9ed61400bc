// Package roster turns raw Sleeper league data into editable team records.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fantasy-logo-studio/internal/colors"
	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/logging"
	"fantasy-logo-studio/internal/sleeper"
)

// Defaults applied to every freshly loaded team.
const (
	defaultMascot    = "Fox"
	defaultPrimary   = "#00B2CA"
	defaultSecondary = "#1A1A1A"
	unknownOwner     = "Unknown"
)

// LeagueClient is the slice of the Sleeper client the loader depends on.
type LeagueClient interface {
	Rosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error)
	Users(ctx context.Context, leagueID string) ([]sleeper.User, error)
}

// Loader fetches a league's rosters and users and joins them into teams.
type Loader struct {
	client LeagueClient
	logger *slog.Logger
	seed   func() int
}

// NewLoader constructs a Loader with a fresh-seed source.
func NewLoader(client LeagueClient, logger *slog.Logger) *Loader {
	return &Loader{
		client: client,
		logger: logger,
		seed:   colors.RandomSeed,
	}
}

// Load fetches both league resources and maps each roster entry into a Team
// with placeholder branding. If either fetch fails, no teams are returned.
func (l *Loader) Load(ctx context.Context, leagueID string) ([]domain.Team, error) {
	rosters, err := l.client.Rosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league %s: %w", leagueID, err)
	}

	users, err := l.client.Users(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league %s: %w", leagueID, err)
	}

	ownerNames := make(map[string]string, len(users))
	for _, u := range users {
		ownerNames[u.UserID] = u.DisplayName
	}

	teams := make([]domain.Team, 0, len(rosters))
	for i, r := range rosters {
		teams = append(teams, domain.Team{
			ID:        rosterID(r, i),
			Name:      teamName(r, i),
			Owner:     ownerName(ownerNames, r.OwnerID),
			Mascot:    defaultMascot,
			Primary:   defaultPrimary,
			Secondary: defaultSecondary,
			Seed:      l.seed(),
		})
	}

	logging.Info(l.logger, "league loaded",
		slog.String("league_id", leagueID),
		slog.Int(logging.FieldCount, len(teams)),
	)
	return teams, nil
}

func rosterID(r sleeper.Roster, index int) string {
	if r.RosterID != 0 {
		return strconv.Itoa(r.RosterID)
	}
	return strconv.Itoa(index)
}

func teamName(r sleeper.Roster, index int) string {
	if r.Settings.TeamName != "" {
		return r.Settings.TeamName
	}
	return fmt.Sprintf("Team %d", index+1)
}

func ownerName(names map[string]string, ownerID string) string {
	if name := names[ownerID]; name != "" {
		return name
	}
	return unknownOwner
}
