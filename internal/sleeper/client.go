// Package sleeper is a read-only client for the public Sleeper league API.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config controls how the client reaches the Sleeper API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches league rosters and users.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Rosters retrieves the roster list for a league.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/rosters", url.PathEscape(leagueID)), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// Users retrieves the league members used to resolve owner display names.
func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	var users []User
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/users", url.PathEscape(leagueID)), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sleeper: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
