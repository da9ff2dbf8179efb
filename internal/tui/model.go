package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// column identifies which column is currently active.
type column int

const (
	colCases column = iota
	colCompose
	colHistory
)

// Options configures the playground TUI.
type Options struct {
	Gateway      playground.Gateway
	Catalog      playground.CatalogSource
	CaseEvents   <-chan struct{}
	UITheme      string
	DefaultModel string
}

// Model is the top-level bubbletea model for the playground.
type Model struct {
	engine     *playground.Engine
	store      *playground.Store
	statusCh   chan statusMsg
	caseEvents <-chan struct{}

	width        int
	height       int
	activeColumn column

	cases   casesModel
	form    formModel
	results resultsModel
	history historyModel

	status     statusMsg
	generating bool
	lastDraft  playground.Draft
}

// NewModel creates a playground model wired to the given gateway and
// preset catalog.
func NewModel(opts Options) Model {
	statusCh := make(chan statusMsg, 16)
	store := playground.NewStore()
	engine := playground.NewEngine(store, opts.Gateway, opts.Catalog,
		func(level playground.StatusLevel, message string) {
			statusCh <- statusMsg{Level: level, Text: message}
		})

	return Model{
		engine:       engine,
		store:        store,
		statusCh:     statusCh,
		caseEvents:   opts.CaseEvents,
		activeColumn: colCompose,
		cases:        newCasesModel(),
		form:         newFormModel(opts.DefaultModel),
		results:      newResultsModel(),
		history:      newHistoryModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.engineCmd(m.engine.Bootstrap),
		m.listenStatus(),
	}
	if m.caseEvents != nil {
		cmds = append(cmds, m.listenCases())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		m.syncFromStore()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.update(msg)
		return m, cmd

	case statusMsg:
		m.status = msg
		return m, m.listenStatus()

	case statusClosedMsg:
		return m, nil

	case casesChangedMsg:
		return m, tea.Batch(m.engineCmd(m.engine.ReloadCatalog), m.listenCases())

	case stateChangedMsg:
		m.syncFromStore()
		return m, nil

	case generateDoneMsg:
		m.generating = false
		m.results.setGenerating(false)
		m.syncFromStore()
		return m, nil
	}

	return m.forwardToColumn(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		m.activeColumn = (m.activeColumn + 1) % 3
		return m, nil

	case key.Matches(msg, keys.ShiftTab):
		m.activeColumn = (m.activeColumn + 2) % 3
		return m, nil

	case key.Matches(msg, keys.Generate):
		return m.startGenerate()

	case key.Matches(msg, keys.Like):
		if cur := m.store.Current(); cur != nil {
			return m, m.toggleLikeCmd(cur.ID, !cur.Liked)
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.engineCmd(m.engine.RefreshHistory)
	}

	// q quits outside the composer, where it would otherwise type.
	if m.activeColumn != colCompose && msg.String() == "q" {
		return m, tea.Quit
	}

	switch m.activeColumn {
	case colCases:
		if key.Matches(msg, keys.Enter) {
			if id := m.cases.selectedCaseID(); id != "" {
				return m, m.loadCaseCmd(id)
			}
			return m, nil
		}

	case colCompose:
		if key.Matches(msg, keys.Enter) {
			return m.startGenerate()
		}
		if key.Matches(msg, keys.PgUp) || key.Matches(msg, keys.PgDown) {
			var cmd tea.Cmd
			m.results, cmd = m.results.update(msg)
			return m, cmd
		}

	case colHistory:
		switch {
		case key.Matches(msg, keys.TabAll):
			return m, m.switchTabCmd(playground.TabAll)
		case key.Matches(msg, keys.TabLiked):
			return m, m.switchTabCmd(playground.TabLiked)
		case key.Matches(msg, keys.Enter):
			if id := m.history.selectedSessionID(); id != "" {
				return m, m.loadSessionCmd(id)
			}
			return m, nil
		case msg.String() == "l":
			if id := m.history.selectedSessionID(); id != "" {
				return m, m.toggleLikeCmd(id, !m.history.selectedLiked())
			}
			return m, nil
		}
	}

	return m.forwardToColumn(msg)
}

func (m Model) forwardToColumn(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeColumn {
	case colCases:
		m.cases, cmd = m.cases.update(msg)
	case colCompose:
		m.form, cmd = m.form.update(msg)
	case colHistory:
		m.history, cmd = m.history.update(msg)
	}
	return m, cmd
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	d := m.form.draft()
	m.store.SetDraft(d)
	m.lastDraft = d
	m.generating = true
	m.results.setGenerating(true)
	return m, tea.Batch(m.generateCmd(), m.results.spinner.Tick)
}

// syncFromStore re-reads the view state and pushes it into the
// columns. The form is only overwritten when the draft changed
// outside the form, from a preset or session load.
func (m *Model) syncFromStore() {
	view := m.store.View()
	m.cases.setRecords(render.CaseRecords(view.Cases))
	m.history.setRecords(render.HistoryRecords(view.History, view.ActiveTab), view.ActiveTab)
	m.results.setSession(view.CurrentSession)
	if view.Draft != m.lastDraft {
		m.form.setDraft(view.Draft)
		m.lastDraft = view.Draft
	}
}

func (m *Model) updateSizes() {
	contentHeight := max(5, m.height-2)

	col1Width := m.width * 25 / 100
	col3Width := m.width * 32 / 100
	col2Width := m.width - col1Width - col3Width - 6
	if col1Width < 22 {
		col1Width = 22
	}
	if col2Width < 30 {
		col2Width = 30
	}
	if col3Width < 26 {
		col3Width = 26
	}

	m.cases.setSize(col1Width-2, contentHeight-2)
	m.form.setWidth(col2Width - 2)
	m.results.setSize(col2Width-2, contentHeight-2-m.form.height()-1)
	m.history.setSize(col3Width-2, contentHeight-2)
}

// Commands

func (m Model) engineCmd(fn func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		fn(context.Background())
		return stateChangedMsg{}
	}
}

func (m Model) generateCmd() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		engine.Generate(context.Background())
		return generateDoneMsg{}
	}
}

func (m Model) toggleLikeCmd(sessionID string, liked bool) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		engine.ToggleLike(context.Background(), sessionID, liked)
		return stateChangedMsg{}
	}
}

func (m Model) loadCaseCmd(id string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		engine.LoadCase(id)
		return stateChangedMsg{}
	}
}

func (m Model) loadSessionCmd(id string) tea.Cmd {
	engine := m.engine
	view := m.store.View()
	return func() tea.Msg {
		for _, s := range view.History {
			if s.ID == id {
				engine.LoadSession(s)
				break
			}
		}
		return stateChangedMsg{}
	}
}

func (m Model) switchTabCmd(tab playground.HistoryTab) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		engine.SwitchTab(tab)
		return stateChangedMsg{}
	}
}

func (m Model) listenStatus() tea.Cmd {
	ch := m.statusCh
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return statusClosedMsg{}
		}
		return s
	}
}

func (m Model) listenCases() tea.Cmd {
	ch := m.caseEvents
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return statusClosedMsg{}
		}
		return casesChangedMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		v := tea.NewView(i18n.T("tui.loading", "Loading..."))
		v.AltScreen = true
		return v
	}

	contentHeight := max(5, m.height-2)

	col1Width := m.width * 25 / 100
	col3Width := m.width * 32 / 100
	col2Width := m.width - col1Width - col3Width - 6
	if col1Width < 22 {
		col1Width = 22
	}
	if col2Width < 30 {
		col2Width = 30
	}
	if col3Width < 26 {
		col3Width = 26
	}

	composeTitle := styles.ColumnTitle.Render(i18n.T("column.compose", "Compose"))
	compose := lipgloss.JoinVertical(lipgloss.Left,
		composeTitle,
		m.form.view(m.activeColumn == colCompose),
		"",
		m.results.view(),
	)

	col1 := renderColumn(m.cases.view(), col1Width, contentHeight, m.activeColumn == colCases)
	col2 := renderColumn(compose, col2Width, contentHeight, m.activeColumn == colCompose)
	col3 := renderColumn(m.history.view(), col3Width, contentHeight, m.activeColumn == colHistory)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, col1, col2, col3)

	status := m.statusLine()
	content := lipgloss.JoinVertical(lipgloss.Left, columns, status)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) statusLine() string {
	text := m.status.Text
	if m.generating {
		text = i18n.T("status.generating", "Generating prompts...")
	}
	var styled string
	switch m.status.Level {
	case playground.StatusSuccess:
		styled = styles.StatusSuccess.Render(text)
	case playground.StatusError:
		styled = styles.StatusError.Render(text)
	default:
		styled = styles.StatusInfo.Render(text)
	}
	hints := styles.Muted.Render(i18n.T("tui.hints",
		"tab: columns | ctrl+g: generate | ctrl+l: like | 1/2: history tabs | ctrl+c: quit"))
	if text == "" {
		return styles.StatusBar.Render(hints)
	}
	return styles.StatusBar.Render(styled + "  " + hints)
}

func renderColumn(content string, width, height int, active bool) string {
	style := styles.InactiveBorder
	if active {
		style = styles.ActiveBorder
	}
	return style.Width(max(1, width-2)).Height(max(1, height-2)).Render(content)
}
