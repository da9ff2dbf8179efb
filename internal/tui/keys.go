package tui

import "charm.land/bubbles/v2/key"

// keyMap defines the key bindings for the playground.
type keyMap struct {
	Quit     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding

	Generate key.Binding
	Like     key.Binding
	Refresh  key.Binding

	TabAll   key.Binding
	TabLiked key.Binding

	NextField key.Binding
	PrevField key.Binding
	NextTheme key.Binding
	PrevTheme key.Binding

	PgUp   key.Binding
	PgDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next column"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous column"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Like: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "like"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		TabAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all sessions"),
		),
		TabLiked: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "liked only"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous theme"),
		),
		PgUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PgDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

var keys = defaultKeyMap()
