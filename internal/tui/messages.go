package tui

import "github.com/chromasynth/go-seadream/internal/playground"

// statusMsg carries an engine status notice into the update loop.
type statusMsg struct {
	Level playground.StatusLevel
	Text  string
}

// stateChangedMsg is sent after an engine call returns, signalling
// that the view state should be re-read from the store.
type stateChangedMsg struct{}

// generateDoneMsg is sent when a generation round trip finishes,
// successfully or not.
type generateDoneMsg struct{}

// casesChangedMsg is sent when the preset catalog file changes on disk.
type casesChangedMsg struct{}

// statusClosedMsg is sent when the status channel is closed.
type statusClosedMsg struct{}
