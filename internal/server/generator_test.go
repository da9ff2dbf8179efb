package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/chromasynth/go-seadream/internal/playground"
)

func TestGenerate_CoversAllTargetModels(t *testing.T) {
	g := NewGenerator()
	out, err := g.Generate("a neon diner at dusk", "cinematic")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(out.Prompts) != len(targetModels) {
		t.Fatalf("got %d prompts, want %d", len(out.Prompts), len(targetModels))
	}
	for _, model := range targetModels {
		p := out.Prompts[model]
		if p == "" {
			t.Errorf("no prompt for %s", model)
			continue
		}
		if !strings.Contains(p, "a neon diner at dusk") {
			t.Errorf("prompt for %s does not carry the brief: %q", model, p)
		}
	}
}

func TestGenerate_BlueprintStructure(t *testing.T) {
	g := NewGenerator()
	out, err := g.Generate("  a glass pavilion  ", "architecture")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"# Creative Blueprint",
		"**Theme:** architecture",
		"## Briefing",
		"a glass pavilion",
		"## Visual Direction",
	} {
		if !strings.Contains(out.Blueprint, want) {
			t.Errorf("blueprint missing %q:\n%s", want, out.Blueprint)
		}
	}
	if strings.Contains(out.Blueprint, "  a glass pavilion  ") {
		t.Error("brief should be trimmed in the blueprint")
	}
}

func TestGenerate_UnsupportedTheme(t *testing.T) {
	g := NewGenerator()
	_, err := g.Generate("brief", "noir")

	var themeErr *UnsupportedThemeError
	if !errors.As(err, &themeErr) {
		t.Fatalf("error = %v, want *UnsupportedThemeError", err)
	}
	if themeErr.Theme != "noir" {
		t.Errorf("Theme = %q", themeErr.Theme)
	}
}

func TestGenerate_IncompletePlaybookEntry(t *testing.T) {
	g := &Generator{playbook: map[string]themeEntry{
		"cinematic": {Description: "has description"},
	}}
	_, err := g.Generate("brief", "cinematic")

	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want *IncompleteError", err)
	}
	if len(incomplete.Missing) != 1 {
		t.Fatalf("Missing = %+v", incomplete.Missing)
	}
	m := incomplete.Missing[0]
	if m.Component != "blueprint" || m.Field != "directives" {
		t.Errorf("Missing[0] = %+v", m)
	}
}

func TestGenerate_ChecklistOrFallbackNote(t *testing.T) {
	g := NewGenerator()

	// cinematic has a checklist, so no fallback note.
	out, err := g.Generate("brief", "cinematic")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Checklist) == 0 {
		t.Error("cinematic should carry checklist questions")
	}
	if len(out.Notes) != 0 {
		t.Errorf("Notes = %v, want none", out.Notes)
	}

	// design has no checklist, so the fallback note appears.
	out, err = g.Generate("brief", "design")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Checklist) != 0 {
		t.Errorf("Checklist = %v, want none", out.Checklist)
	}
	if len(out.Notes) != 1 {
		t.Errorf("Notes = %v, want the fallback note", out.Notes)
	}
}

func TestDefaultPlaybook_CoversThemeSet(t *testing.T) {
	for _, theme := range playground.Themes() {
		if _, ok := defaultPlaybook[string(theme)]; !ok {
			t.Errorf("playbook missing theme %q", theme)
		}
	}
	if len(defaultPlaybook) != len(playground.Themes()) {
		t.Errorf("playbook has %d entries, theme set has %d", len(defaultPlaybook), len(playground.Themes()))
	}
}

func TestSupportedThemes_Sorted(t *testing.T) {
	g := NewGenerator()
	themes := g.SupportedThemes()
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Fatalf("themes not sorted: %v", themes)
		}
	}
}
