// Package openai calls the OpenAI image API to produce team logos.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/providers"
)

// Config controls how the client reaches the image API.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client requests square, transparent-background logo images and maps the
// response into a provider Result.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		model:      resolveModel(cfg.Model),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Generate submits a deterministic prompt for the team and extracts either a
// direct URL or an inline base64 payload from the first result item.
func (c *Client) Generate(ctx context.Context, team domain.Team) (providers.Result, error) {
	payload := imageRequest{
		Model:      c.model,
		Prompt:     domain.Prompt(team),
		Size:       defaultImageSize,
		N:          1,
		Background: "transparent",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return providers.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+imagesPath, bytes.NewReader(body))
	if err != nil {
		return providers.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.Result{}, &providers.UpstreamError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var decoded imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return providers.Result{}, err
	}

	if len(decoded.Data) == 0 {
		return providers.Result{}, providers.ErrNoImage
	}

	item := decoded.Data[0]
	switch {
	case item.URL != "":
		return providers.Result{URL: item.URL}, nil
	case item.B64JSON != "":
		return providers.Result{URL: "data:image/png;base64," + item.B64JSON}, nil
	default:
		return providers.Result{}, providers.ErrNoImage
	}
}
