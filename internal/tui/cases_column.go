package tui

import (
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/render"
)

// caseItem wraps a projected preset record for the list component.
type caseItem struct {
	rec render.Record
}

func (i caseItem) Title() string { return i.rec.Title }

func (i caseItem) Description() string {
	desc := i.rec.Body
	if len(i.rec.Tags) > 0 {
		desc = desc + "  [" + strings.Join(i.rec.Tags, ", ") + "]"
	}
	return desc
}

func (i caseItem) FilterValue() string {
	return i.rec.Title + " " + strings.Join(i.rec.Tags, " ")
}

// casesModel manages the preset catalog list (column 1).
type casesModel struct {
	list list.Model
}

func newCasesModel() casesModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = i18n.T("column.cases", "Presets")
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return casesModel{list: l}
}

func (m *casesModel) setRecords(records []render.Record) {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = caseItem{rec: r}
	}
	m.list.SetItems(items)
}

func (m *casesModel) setSize(w, h int) {
	m.list.SetSize(w, h)
}

// selectedCaseID returns the id of the highlighted preset, or "" when
// the list shows only a placeholder.
func (m *casesModel) selectedCaseID() string {
	item := m.list.SelectedItem()
	if item == nil {
		return ""
	}
	ci, ok := item.(caseItem)
	if !ok || ci.rec.Kind != render.KindCase {
		return ""
	}
	return ci.rec.ID
}

func (m casesModel) update(msg tea.Msg) (casesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m casesModel) view() string {
	return m.list.View()
}
