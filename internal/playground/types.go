// Package playground holds the client-side view of the SeaDream prompt
// playground: the domain types, the view state store, and the
// synchronization engine that keeps the state consistent with the
// backend across generate/like/load operations.
package playground

import "strings"

// Theme is one of the fixed SeaDream theme keys.
type Theme string

const (
	ThemeCinematic         Theme = "cinematic"
	ThemeAdvertising       Theme = "advertising"
	ThemeDesign            Theme = "design"
	ThemeArchitecture      Theme = "architecture"
	ThemeTradeShowAssembly Theme = "trade_show_assembly"
	ThemeCharacterCreation Theme = "character_creation"
	ThemeSceneCreation     Theme = "scene_creation"
	ThemeObjectStudy       Theme = "object_study"
	ThemeCharacterStudy    Theme = "character_study"
)

// Themes returns the closed theme set in presentation order.
// Only these keys are ever offered as a selectable default; unknown
// theme values coming back from the backend are displayed as-is.
func Themes() []Theme {
	return []Theme{
		ThemeCinematic,
		ThemeAdvertising,
		ThemeDesign,
		ThemeArchitecture,
		ThemeTradeShowAssembly,
		ThemeCharacterCreation,
		ThemeSceneCreation,
		ThemeObjectStudy,
		ThemeCharacterStudy,
	}
}

// ValidTheme reports whether key is a member of the enumerated theme set.
func ValidTheme(key string) bool {
	for _, t := range Themes() {
		if string(t) == key {
			return true
		}
	}
	return false
}

// DisplayTheme renders a theme key for humans: internal separators
// become spaces. Works for unknown keys too.
func DisplayTheme(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// Session is one generation result bundle as returned by the backend.
// The only client-side mutation is the Liked flag, and only after the
// backend has confirmed the toggle.
type Session struct {
	ID                 string            `json:"id"`
	CreatedAt          string            `json:"created_at"`
	Liked              bool              `json:"liked"`
	Brief              string            `json:"brief"`
	Theme              string            `json:"theme"`
	ModelName          string            `json:"model_name"`
	Blueprint          string            `json:"blueprint"`
	Prompts            map[string]string `json:"prompts"`
	ChecklistQuestions []string          `json:"checklist_questions,omitempty"`
	Notes              []string          `json:"notes,omitempty"`
	Tags               []string          `json:"tags,omitempty"`
	CaseID             string            `json:"case_id,omitempty"`
}

// Reference is an entry in the liked/reference collection. It is keyed
// by session id but decoded independently so a malformed item never
// takes the renderer down.
type Reference struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Liked     bool   `json:"liked"`
	Brief     string `json:"brief"`
	Theme     string `json:"theme"`
}

// Case is a reusable preset sourced from the static catalog.
type Case struct {
	ID    string   `json:"-"`
	Title string   `json:"title"`
	Theme string   `json:"theme"`
	Brief string   `json:"brief"`
	Tags  []string `json:"tags"`
}

// HistoryTab selects which slice of history is rendered.
type HistoryTab string

const (
	TabAll   HistoryTab = "all"
	TabLiked HistoryTab = "liked"
)

// Draft holds the form fields for the next generation request.
type Draft struct {
	Brief   string
	Theme   string
	Model   string
	TagsRaw string
}

// GenerateRequest is the body of the backend's POST /generate endpoint.
type GenerateRequest struct {
	Brief  string   `json:"brief"`
	Theme  string   `json:"theme"`
	Model  string   `json:"model"`
	CaseID string   `json:"case_id,omitempty"`
	Tags   []string `json:"tags"`
}

// ViewState is the single source of truth for everything the UI shows.
type ViewState struct {
	CurrentSession *Session
	History        []Session
	References     []Reference
	Cases          map[string]Case
	ActiveTab      HistoryTab
	SelectedCaseID string
	Draft          Draft
	Generating     bool
}
