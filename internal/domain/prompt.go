package domain

import "fmt"

// Prompt builds the text-to-image prompt for a team. The seed is embedded so
// regenerating with the same branding yields the same prompt.
func Prompt(t Team) string {
	return fmt.Sprintf(
		"Create a clean, modern sports logo for a fantasy football team. "+
			"Team: %s. Mascot: %s. Primary %s, Secondary %s. "+
			"Vector style, bold lines, no text, transparent bg. Seed %d.",
		t.Name, t.Mascot, t.Primary, t.Secondary, t.Seed,
	)
}
