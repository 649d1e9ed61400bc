package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasy-logo-studio/internal/colors"
	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/providers"
	"fantasy-logo-studio/internal/store"
)

type fakeLoader struct {
	teams []domain.Team
	err   error
}

func (f *fakeLoader) Load(ctx context.Context, leagueID string) ([]domain.Team, error) {
	_ = ctx
	_ = leagueID
	return f.teams, f.err
}

type fakeProvider struct {
	url  string
	err  error
	last domain.Team
}

func (f *fakeProvider) Generate(ctx context.Context, team domain.Team) (providers.Result, error) {
	_ = ctx
	f.last = team
	if f.err != nil {
		return providers.Result{}, f.err
	}
	return providers.Result{URL: f.url}, nil
}

func loadedService(t *testing.T, provider providers.ImageProvider) *Service {
	t.Helper()
	loader := &fakeLoader{teams: []domain.Team{
		{ID: "3", Name: "Sharks", Owner: "Alex", Mascot: "Fox", Primary: "#00B2CA", Secondary: "#1A1A1A", Seed: 0},
	}}
	svc := NewService(store.NewMemoryStore(), loader, provider, nil)

	_, err := svc.LoadLeague(context.Background(), "league-9")
	require.NoError(t, err)
	return svc
}

func TestLoadLeagueReplacesRoster(t *testing.T) {
	svc := loadedService(t, &fakeProvider{url: "u"})

	teams := svc.Teams()
	require.Len(t, teams, 1)
	assert.Equal(t, "Sharks", teams[0].Name)
}

func TestLoadLeagueFailureKeepsExistingRoster(t *testing.T) {
	memory := store.NewMemoryStore()
	loader := &fakeLoader{teams: []domain.Team{{ID: "1", Name: "Sharks", Owner: "Alex"}}}
	svc := NewService(memory, loader, &fakeProvider{}, nil)

	_, err := svc.LoadLeague(context.Background(), "league-9")
	require.NoError(t, err)

	loader.err = errors.New("upstream down")
	_, err = svc.LoadLeague(context.Background(), "league-9")
	require.Error(t, err)

	assert.Len(t, svc.Teams(), 1, "failed load must not clear the roster")
}

func TestPatchSanitizesColors(t *testing.T) {
	svc := loadedService(t, &fakeProvider{})

	primary := "zz12ab"
	secondary := "1a2b3c"
	updated, ok := svc.Patch("3", domain.TeamPatch{Primary: &primary, Secondary: &secondary})
	require.True(t, ok)

	assert.Equal(t, "#12ab00", updated.Primary)
	assert.Equal(t, "#1a2b3c", updated.Secondary)
}

func TestSuggestMatchesDeriver(t *testing.T) {
	svc := loadedService(t, &fakeProvider{})

	p, s, ok := svc.Suggest("3")
	require.True(t, ok)

	wantP, wantS := colors.For("Sharks", "Fox", 0)
	assert.Equal(t, wantP, p)
	assert.Equal(t, wantS, s)

	_, _, ok = svc.Suggest("missing")
	assert.False(t, ok)
}

func TestGeneratePatchesLogoURL(t *testing.T) {
	provider := &fakeProvider{url: "data:image/svg+xml;charset=utf-8,x"}
	svc := loadedService(t, provider)

	team, _ := svc.TeamByID("3")
	url, err := svc.Generate(context.Background(), team)
	require.NoError(t, err)
	assert.Equal(t, provider.url, url)

	stored, _ := svc.TeamByID("3")
	require.NotNil(t, stored.LogoURL)
	assert.Equal(t, provider.url, *stored.LogoURL)
}

func TestGenerateFailureLeavesLogoUntouched(t *testing.T) {
	existing := "data:image/png;base64,old"
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := loadedService(t, provider)

	_, ok := svc.Patch("3", domain.TeamPatch{LogoURL: &existing})
	require.True(t, ok)

	team, _ := svc.TeamByID("3")
	_, err := svc.Generate(context.Background(), team)
	require.Error(t, err)

	stored, _ := svc.TeamByID("3")
	require.NotNil(t, stored.LogoURL)
	assert.Equal(t, existing, *stored.LogoURL, "failed generation must not corrupt state")
}

func TestGenerateForUnloadedTeamStillReturnsURL(t *testing.T) {
	provider := &fakeProvider{url: "https://img.example/logo.png"}
	svc := loadedService(t, provider)

	url, err := svc.Generate(context.Background(), domain.Team{
		ID: "not-loaded", Name: "X", Owner: "Y", Mascot: "Z",
		Primary: "#000000", Secondary: "#ffffff",
	})
	require.NoError(t, err)
	assert.Equal(t, provider.url, url)
}
