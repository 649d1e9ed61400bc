// Package placeholder renders self-contained SVG logos without any network
// dependency. It backs local development and the no-credential fallback.
package placeholder

import (
	"context"
	"fmt"
	"net/url"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/providers"
)

// Name identifies this provider in logs and metrics.
const Name = "placeholder"

// maxLabelLen caps the mascot label so it stays inside the emblem.
const maxLabelLen = 18

// Provider synthesizes a colored-circle emblem with the mascot as a label.
type Provider struct{}

// New creates a placeholder provider.
func New() *Provider {
	return &Provider{}
}

// Generate always succeeds and returns an inline data URI.
func (p *Provider) Generate(ctx context.Context, team domain.Team) (providers.Result, error) {
	_ = ctx

	svg := fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' width='1024' height='1024' viewBox='0 0 1024 1024'>`+
			`<rect width='1024' height='1024' fill='%s'/>`+
			`<circle cx='512' cy='512' r='360' fill='%s' opacity='0.95'/>`+
			`<text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' `+
			`font-size='72' font-family='Inter, Arial, sans-serif' fill='#111'>%s</text>`+
			`</svg>`,
		team.Secondary, team.Primary, truncateLabel(team.Mascot),
	)

	return providers.Result{URL: "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)}, nil
}

func truncateLabel(mascot string) string {
	runes := []rune(mascot)
	if len(runes) > maxLabelLen {
		runes = runes[:maxLabelLen]
	}
	return string(runes)
}
