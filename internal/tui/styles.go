package tui

import (
	"charm.land/lipgloss/v2"
)

// palette holds the raw colors a Styles set is built from.
type palette struct {
	BorderActive   string
	BorderInactive string
	Accent         string
	TextPrimary    string
	TextSecondary  string
	TextMuted      string
	Success        string
	Error          string
	LikedFg        string
}

var darkPalette = palette{
	BorderActive:   "#7aa2f7",
	BorderInactive: "#3b4261",
	Accent:         "#7aa2f7",
	TextPrimary:    "#c0caf5",
	TextSecondary:  "#9aa5ce",
	TextMuted:      "#565f89",
	Success:        "#9ece6a",
	Error:          "#f7768e",
	LikedFg:        "#ff757f",
}

var lightPalette = palette{
	BorderActive:   "#2e5aac",
	BorderInactive: "#c4c8da",
	Accent:         "#2e5aac",
	TextPrimary:    "#343b58",
	TextSecondary:  "#565a6e",
	TextMuted:      "#9699a3",
	Success:        "#385f0d",
	Error:          "#8c4351",
	LikedFg:        "#b3385b",
}

// Styles holds the computed lipgloss styles for the TUI.
type Styles struct {
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	StatusBar     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style

	ColumnTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	ThemeValue        lipgloss.Style

	LikeOn  lipgloss.Style
	LikeOff lipgloss.Style
	Muted   lipgloss.Style
}

var styles Styles

// InitStyles builds the package styles for the named UI theme. Any
// value other than "light" selects the dark palette.
func InitStyles(name string) {
	p := darkPalette
	if name == "light" {
		p = lightPalette
	}
	styles = buildStyles(p)
}

func buildStyles(p palette) Styles {
	return Styles{
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderActive)),

		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderInactive)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextSecondary)).
			Padding(0, 1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextSecondary)),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),

		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),

		ColumnTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextMuted)),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextSecondary)),

		FieldLabelFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		ThemeValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)),

		LikeOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.LikedFg)).
			Bold(true),

		LikeOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextMuted)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextMuted)),
	}
}
