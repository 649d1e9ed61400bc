package domain

import (
	"strings"
	"testing"
)

func TestPromptEmbedsBrandingFields(t *testing.T) {
	team := Team{
		Name:      "Sharks",
		Mascot:    "Fox",
		Primary:   "#ddcd3c",
		Secondary: "#7d365f",
		Seed:      42,
	}

	prompt := Prompt(team)
	for _, want := range []string{"Sharks", "Fox", "#ddcd3c", "#7d365f", "Seed 42"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}

	if prompt != Prompt(team) {
		t.Fatal("prompt should be deterministic for identical teams")
	}
}

func TestTeamPatchApply(t *testing.T) {
	logo := "data:image/png;base64,abc"
	mascot := "Lynx"
	seed := 7

	team := Team{ID: "1", Name: "Sharks", Mascot: "Fox", Seed: 0}
	patched := TeamPatch{Mascot: &mascot, Seed: &seed, LogoURL: &logo}.Apply(team)

	if patched.Mascot != "Lynx" || patched.Seed != 7 || patched.LogoURL == nil || *patched.LogoURL != logo {
		t.Fatalf("unexpected patch result: %+v", patched)
	}
	if patched.Name != "Sharks" || patched.ID != "1" {
		t.Fatalf("patch touched fields it should not: %+v", patched)
	}
}
