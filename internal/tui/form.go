package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// formField identifies which composer field has focus.
type formField int

const (
	fieldBrief formField = iota
	fieldTheme
	fieldModel
	fieldTags
	fieldCount
)

// formModel is the brief composer: the editable draft for the next
// generation request.
type formModel struct {
	brief  textinput.Model
	model  textinput.Model
	tags   textinput.Model
	themes []render.ThemeOption
	theme  int
	focus  formField
	width  int
}

func newFormModel(defaultModel string) formModel {
	brief := textinput.New()
	brief.Placeholder = i18n.T("form.brief_placeholder", "Describe the visual you want...")
	brief.CharLimit = 2000
	brief.Focus()

	model := textinput.New()
	model.Placeholder = defaultModel
	model.SetValue(defaultModel)
	model.CharLimit = 120

	tags := textinput.New()
	tags.Placeholder = i18n.T("form.tags_placeholder", "tag, another tag")
	tags.CharLimit = 300

	return formModel{
		brief:  brief,
		model:  model,
		tags:   tags,
		themes: render.ThemeOptions(),
	}
}

// draft snapshots the form fields.
func (m *formModel) draft() playground.Draft {
	return playground.Draft{
		Brief:   m.brief.Value(),
		Theme:   m.themes[m.theme].Key,
		Model:   m.model.Value(),
		TagsRaw: m.tags.Value(),
	}
}

// setDraft pushes an externally updated draft into the fields. Used
// when loading a preset or a history session repopulates the form.
func (m *formModel) setDraft(d playground.Draft) {
	m.brief.SetValue(d.Brief)
	m.model.SetValue(d.Model)
	m.tags.SetValue(d.TagsRaw)
	for i, opt := range m.themes {
		if opt.Key == d.Theme {
			m.theme = i
			break
		}
	}
}

func (m *formModel) setWidth(w int) {
	m.width = w
}

func (m *formModel) setFocus(f formField) {
	m.focus = f
	m.brief.Blur()
	m.model.Blur()
	m.tags.Blur()
	switch f {
	case fieldBrief:
		m.brief.Focus()
	case fieldModel:
		m.model.Focus()
	case fieldTags:
		m.tags.Focus()
	}
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.NextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(kmsg, keys.PrevField):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case key.Matches(kmsg, keys.NextTheme):
			if m.focus == fieldTheme {
				m.theme = (m.theme + 1) % len(m.themes)
				return m, nil
			}
		case key.Matches(kmsg, keys.PrevTheme):
			if m.focus == fieldTheme {
				m.theme = (m.theme + len(m.themes) - 1) % len(m.themes)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldBrief:
		m.brief, cmd = m.brief.Update(msg)
	case fieldModel:
		m.model, cmd = m.model.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

func (m formModel) view(active bool) string {
	label := func(f formField, text string) string {
		if active && m.focus == f {
			return styles.FieldLabelFocused.Render("▸ " + text)
		}
		return styles.FieldLabel.Render("  " + text)
	}

	themeLine := styles.ThemeValue.Render("◂ " + m.themes[m.theme].Label + " ▸")

	rows := []string{
		label(fieldBrief, i18n.T("form.brief", "Brief")),
		m.brief.View(),
		label(fieldTheme, i18n.T("form.theme", "Theme")),
		themeLine,
		label(fieldModel, i18n.T("form.model", "Model")),
		m.model.View(),
		label(fieldTags, i18n.T("form.tags", "Tags")),
		m.tags.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// height reports how many terminal rows the form occupies.
func (m formModel) height() int {
	return 8
}
