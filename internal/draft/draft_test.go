package draft

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt(Params{
		Topic:  "weekly status update",
		Tone:   "casual",
		Points: []string{"shipped the importer", "blocked on review"},
	})

	for _, want := range []string{
		"Draft a note about: weekly status update",
		"Tone: casual",
		"- shipped the importer",
		"- blocked on review",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildPromptTopicOnly(t *testing.T) {
	got := buildPrompt(Params{Topic: "dentist reminder"})
	if got != "Draft a note about: dentist reminder" {
		t.Fatalf("unexpected prompt: %q", got)
	}
}

func TestNewDeepSeekGeneratorRequiresKey(t *testing.T) {
	if _, err := NewDeepSeekGenerator("", "deepseek-chat", 1024); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
