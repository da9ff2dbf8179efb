package tui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// Shared glamour renderer (created lazily, rebuilt on width change).
var sharedRenderer *glamour.TermRenderer
var sharedRendererWidth int

func getRenderer(width int) *glamour.TermRenderer {
	if sharedRenderer == nil || sharedRendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			sharedRenderer = r
			sharedRendererWidth = width
		}
	}
	return sharedRenderer
}

// resultsModel shows the generated blueprint and per-model prompts in
// a scrollable viewport, with the like control underneath.
type resultsModel struct {
	viewport   viewport.Model
	spinner    spinner.Model
	like       render.LikeState
	generating bool
	ready      bool
	width      int
	height     int
}

func newResultsModel() resultsModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	return resultsModel{spinner: s}
}

func (m *resultsModel) setSize(w, h int) {
	m.width = w
	m.height = h
	if !m.ready {
		m.viewport = viewport.New()
		m.ready = true
	}
	m.viewport.SetWidth(w)
	m.viewport.SetHeight(max(1, h-2))
}

// setSession re-renders the viewport content from the current session.
func (m *resultsModel) setSession(s *playground.Session) {
	m.like = render.LikeButton(s)
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent(s))
	m.viewport.GotoTop()
}

func (m *resultsModel) setGenerating(v bool) {
	m.generating = v
}

func (m *resultsModel) renderContent(s *playground.Session) string {
	records := render.ResultRecords(s)
	contentWidth := max(20, m.width-2)

	var b strings.Builder
	for _, rec := range records {
		switch rec.Kind {
		case render.KindEmpty:
			b.WriteString(styles.Muted.Render(rec.Body))
			b.WriteString("\n")
		case render.KindBlueprint:
			b.WriteString(renderMarkdown(rec.Body, contentWidth))
			b.WriteString("\n")
		case render.KindPrompt:
			b.WriteString(styles.ColumnTitle.Render(rec.Title))
			b.WriteString("\n")
			b.WriteString(rec.Body)
			b.WriteString("\n\n")
		case render.KindNote:
			b.WriteString(styles.Muted.Render("• " + rec.Body))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderMarkdown(md string, width int) string {
	renderer := getRenderer(width)
	if renderer == nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m resultsModel) update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.generating {
			return m, cmd
		}
		return m, nil
	default:
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

// likeLine renders the like control state under the viewport.
func (m resultsModel) likeLine() string {
	if m.generating {
		return m.spinner.View() + " " + i18n.T("status.generating", "Generating prompts...")
	}
	if !m.like.Enabled {
		return styles.LikeOff.Render("♡ " + m.like.Label)
	}
	if m.like.Liked {
		return styles.LikeOn.Render("♥ " + m.like.Label)
	}
	return styles.LikeOff.Render("♡ "+m.like.Label) + styles.Muted.Render("  (ctrl+l)")
}

func (m resultsModel) view() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), "", m.likeLine())
}
