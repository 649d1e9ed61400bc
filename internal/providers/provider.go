// Package providers defines how logo images are produced for teams.
package providers

import (
	"context"

	"fantasy-logo-studio/internal/domain"
)

// Result carries the produced image reference: either a remote URL or an
// inline data URI.
type Result struct {
	URL string `json:"url"`
}

// ImageProvider produces a logo image for a team. Implementations must treat
// the team as already validated and color-normalized.
type ImageProvider interface {
	Generate(ctx context.Context, team domain.Team) (Result, error)
}
