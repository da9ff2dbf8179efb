package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chromasynth/go-seadream/internal/playground"
)

// targetModels are the downstream image models a session carries one
// prompt for each of.
var targetModels = []string{
	"DALL-E_3",
	"Midjourney_V6",
	"Stable_Diffusion_3",
	"Seedream_4_0",
	"Nano_Banana",
	"Flux_1",
}

// themeEntry is the playbook data for one theme.
type themeEntry struct {
	Description string
	Directives  []string
	Checklist   []string
}

// defaultPlaybook maps every member of the theme set to its creative
// directives. A theme outside this map is rejected up front.
var defaultPlaybook = map[string]themeEntry{
	string(playground.ThemeCinematic): {
		Description: "cinematic frame with narrative tension",
		Directives:  []string{"anamorphic lens flare", "volumetric light", "film grain"},
		Checklist:   []string{"Is the key light motivated by the scene?"},
	},
	string(playground.ThemeAdvertising): {
		Description: "product-forward advertising composition",
		Directives:  []string{"hero product placement", "clean negative space", "brand-safe palette"},
		Checklist:   []string{"Does the composition leave room for copy?"},
	},
	string(playground.ThemeDesign): {
		Description: "graphic design exploration",
		Directives:  []string{"strong grid", "limited palette", "typographic hierarchy"},
	},
	string(playground.ThemeArchitecture): {
		Description: "architectural visualization",
		Directives:  []string{"golden hour exterior", "human scale figures", "material realism"},
		Checklist:   []string{"Is the vanishing point consistent?"},
	},
	string(playground.ThemeTradeShowAssembly): {
		Description: "trade show stand assembly",
		Directives:  []string{"modular structure", "visitor flow", "backlit branding"},
	},
	string(playground.ThemeCharacterCreation): {
		Description: "original character design",
		Directives:  []string{"silhouette readability", "costume storytelling", "turnaround-friendly pose"},
		Checklist:   []string{"Does the silhouette read at thumbnail size?"},
	},
	string(playground.ThemeSceneCreation): {
		Description: "full scene construction",
		Directives:  []string{"layered depth", "environmental storytelling", "focal hierarchy"},
	},
	string(playground.ThemeObjectStudy): {
		Description: "single object study",
		Directives:  []string{"neutral backdrop", "raking light", "macro surface detail"},
	},
	string(playground.ThemeCharacterStudy): {
		Description: "character study portrait",
		Directives:  []string{"expression-driven framing", "catchlights", "shallow depth of field"},
	},
}

// UnsupportedThemeError is returned for a theme outside the playbook.
type UnsupportedThemeError struct {
	Theme string
}

func (e *UnsupportedThemeError) Error() string {
	return fmt.Sprintf("unsupported theme %q", e.Theme)
}

// IncompleteError reports which payload parts came out empty. The API
// layer maps it to a 422 with structured missing fields.
type IncompleteError struct {
	Missing []MissingField
}

// MissingField mirrors the wire shape of one incomplete payload part.
type MissingField struct {
	Component string `json:"component"`
	Field     string `json:"field,omitempty"`
}

func (e *IncompleteError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = m.Component
		if m.Field != "" {
			parts[i] += "." + m.Field
		}
	}
	return "generated payload missing required fields: " + strings.Join(parts, ", ")
}

// Generated is the output of one generation run.
type Generated struct {
	Blueprint string
	Prompts   map[string]string
	Checklist []string
	Notes     []string
}

// Generator composes blueprints and per-model prompts from a brief and
// a theme playbook. Composition is deterministic; the upstream LLM call
// of the full product is out of scope here.
type Generator struct {
	playbook map[string]themeEntry
}

// NewGenerator returns a generator using the default playbook.
func NewGenerator() *Generator {
	return &Generator{playbook: defaultPlaybook}
}

// Generate validates the theme, composes the blueprint and one prompt
// per target model, and validates its own payload for completeness.
func (g *Generator) Generate(brief, theme string) (Generated, error) {
	entry, ok := g.playbook[theme]
	if !ok {
		return Generated{}, &UnsupportedThemeError{Theme: theme}
	}

	var missing []MissingField
	if strings.TrimSpace(entry.Description) == "" {
		missing = append(missing, MissingField{Component: "blueprint", Field: "description"})
	}
	if len(entry.Directives) == 0 {
		missing = append(missing, MissingField{Component: "blueprint", Field: "directives"})
	}
	if len(missing) > 0 {
		return Generated{}, &IncompleteError{Missing: missing}
	}

	blueprint := composeBlueprint(brief, theme, entry)

	prompts := make(map[string]string, len(targetModels))
	for _, model := range targetModels {
		prompts[model] = composePrompt(brief, entry, model)
	}

	out := Generated{
		Blueprint: blueprint,
		Prompts:   prompts,
		Checklist: append([]string(nil), entry.Checklist...),
	}
	if len(entry.Checklist) == 0 {
		out.Notes = []string{"Review the blueprint before sending prompts downstream."}
	}
	return out, nil
}

func composeBlueprint(brief, theme string, entry themeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Creative Blueprint\n\n")
	fmt.Fprintf(&b, "**Theme:** %s — %s\n\n", playground.DisplayTheme(theme), entry.Description)
	fmt.Fprintf(&b, "## Briefing\n\n%s\n\n", strings.TrimSpace(brief))
	fmt.Fprintf(&b, "## Visual Direction\n\n")
	for _, d := range entry.Directives {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	return b.String()
}

func composePrompt(brief string, entry themeEntry, model string) string {
	directives := strings.Join(entry.Directives, ", ")
	return fmt.Sprintf("[%s] %s. Style: %s. Rendering notes: %s.",
		model, strings.TrimSpace(brief), entry.Description, directives)
}

// SupportedThemes lists the playbook's theme keys, sorted.
func (g *Generator) SupportedThemes() []string {
	keys := make([]string, 0, len(g.playbook))
	for k := range g.playbook {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
