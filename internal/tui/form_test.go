package tui

import (
	"testing"

	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

func TestFormDraftRoundTrip(t *testing.T) {
	InitStyles("dark")
	f := newFormModel("models/gemini-2.5-pro")

	d := playground.Draft{
		Brief:   "a neon diner",
		Theme:   "object_study",
		Model:   "models/gemini-2.5-flash",
		TagsRaw: "retro, neon",
	}
	f.setDraft(d)

	got := f.draft()
	if got != d {
		t.Errorf("draft() = %+v, want %+v", got, d)
	}
}

func TestFormDefaults(t *testing.T) {
	InitStyles("dark")
	f := newFormModel("models/gemini-2.5-pro")

	d := f.draft()
	if d.Model != "models/gemini-2.5-pro" {
		t.Errorf("Model = %q", d.Model)
	}
	if !playground.ValidTheme(d.Theme) {
		t.Errorf("initial theme %q not in the theme set", d.Theme)
	}
	if d.Brief != "" || d.TagsRaw != "" {
		t.Errorf("draft should start empty: %+v", d)
	}
}

func TestFormFocusCycle(t *testing.T) {
	InitStyles("dark")
	f := newFormModel("m")

	seen := map[formField]bool{}
	for i := 0; i < int(fieldCount); i++ {
		seen[f.focus] = true
		f.setFocus((f.focus + 1) % fieldCount)
	}
	if len(seen) != int(fieldCount) {
		t.Errorf("focus cycle visited %d fields, want %d", len(seen), int(fieldCount))
	}
	if f.focus != fieldBrief {
		t.Errorf("cycle should return to the brief field, got %d", f.focus)
	}
}

func TestHistoryColumnSelection(t *testing.T) {
	InitStyles("dark")
	h := newHistoryModel()
	h.setSize(40, 20)

	// The empty-history placeholder never yields a session id.
	h.setRecords(render.HistoryRecords(nil, playground.TabAll), playground.TabAll)
	if id := h.selectedSessionID(); id != "" {
		t.Errorf("placeholder selection = %q, want empty", id)
	}

	h.setRecords(render.HistoryRecords([]playground.Session{
		{ID: "s1", Theme: "cinematic", Brief: "one"},
	}, playground.TabAll), playground.TabAll)
	if id := h.selectedSessionID(); id != "s1" {
		t.Errorf("selectedSessionID() = %q", id)
	}
}

func TestCasesColumnSelection(t *testing.T) {
	InitStyles("dark")
	c := newCasesModel()
	c.setSize(40, 20)

	c.setRecords(render.CaseRecords(nil))
	if id := c.selectedCaseID(); id != "" {
		t.Errorf("placeholder selection = %q, want empty", id)
	}

	c.setRecords(render.CaseRecords(map[string]playground.Case{
		"neon_diner": {Title: "Neon diner", Theme: "cinematic"},
	}))
	if id := c.selectedCaseID(); id != "neon_diner" {
		t.Errorf("selectedCaseID() = %q", id)
	}
}
