package tui

import (
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// historyItem wraps a projected session record for the list component.
type historyItem struct {
	rec render.Record
}

func (i historyItem) Title() string {
	if i.rec.Liked {
		return "♥ " + i.rec.Title
	}
	return i.rec.Title
}

func (i historyItem) Description() string {
	if i.rec.Subtitle == "" {
		return i.rec.Body
	}
	return i.rec.Subtitle + "  " + i.rec.Body
}

func (i historyItem) FilterValue() string {
	return i.rec.Title + " " + i.rec.Body + " " + strings.Join(i.rec.Tags, " ")
}

// historyModel manages the session history list (column 3), with the
// all/liked tab switch.
type historyModel struct {
	list list.Model
	tab  playground.HistoryTab
}

func newHistoryModel() historyModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return historyModel{list: l, tab: playground.TabAll}
}

func (m *historyModel) setRecords(records []render.Record, tab playground.HistoryTab) {
	m.tab = tab
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = historyItem{rec: r}
	}
	m.list.SetItems(items)
}

func (m *historyModel) setSize(w, h int) {
	m.list.SetSize(w, h-1)
}

// selectedSessionID returns the id of the highlighted session, or ""
// when the list shows only a placeholder.
func (m *historyModel) selectedSessionID() string {
	item := m.list.SelectedItem()
	if item == nil {
		return ""
	}
	hi, ok := item.(historyItem)
	if !ok || hi.rec.Kind != render.KindSession {
		return ""
	}
	return hi.rec.ID
}

// selectedLiked reports the liked flag of the highlighted session.
func (m *historyModel) selectedLiked() bool {
	item := m.list.SelectedItem()
	hi, ok := item.(historyItem)
	return ok && hi.rec.Liked
}

func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) tabBar() string {
	all := i18n.T("history.tab_all", "All")
	liked := i18n.T("history.tab_liked", "Liked")
	if m.tab == playground.TabLiked {
		return styles.TabInactive.Render("1 "+all) + "  " + styles.TabActive.Render("2 "+liked)
	}
	return styles.TabActive.Render("1 "+all) + "  " + styles.TabInactive.Render("2 "+liked)
}

func (m historyModel) view() string {
	return m.tabBar() + "\n" + m.list.View()
}
