// Package render projects view state into flat render records. Every
// function here is a pure mapping: same input state, same records, no
// hidden counters or clocks. Widget construction lives elsewhere.
package render

import (
	"sort"
	"time"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/playground"
)

// Kind classifies a render record.
type Kind string

const (
	KindEmpty     Kind = "empty"
	KindSession   Kind = "session"
	KindCase      Kind = "case"
	KindBlueprint Kind = "blueprint"
	KindPrompt    Kind = "prompt"
	KindNote      Kind = "note"
)

// Record is one renderable item for a screen region.
type Record struct {
	Kind     Kind
	ID       string
	Title    string
	Subtitle string
	Body     string
	Tags     []string
	Liked    bool
}

// briefPreviewLen caps the brief excerpt shown on history cards.
const briefPreviewLen = 160

// HistoryRecords projects the history list for the given tab. The
// liked tab is exactly the liked subset in original order; an empty
// result yields a single explicit placeholder record.
func HistoryRecords(history []playground.Session, tab playground.HistoryTab) []Record {
	var records []Record
	for _, s := range history {
		if tab == playground.TabLiked && !s.Liked {
			continue
		}
		records = append(records, Record{
			Kind:     KindSession,
			ID:       s.ID,
			Title:    playground.DisplayTheme(s.Theme),
			Subtitle: Timestamp(s.CreatedAt),
			Body:     truncate(s.Brief, briefPreviewLen),
			Tags:     s.Tags,
			Liked:    s.Liked,
		})
	}
	if len(records) == 0 {
		return []Record{{
			Kind: KindEmpty,
			Body: i18n.T("render.history_empty", "No records available."),
		}}
	}
	return records
}

// CaseRecords projects the preset catalog, sorted by id so projection
// is stable regardless of map iteration order.
func CaseRecords(cases map[string]playground.Case) []Record {
	if len(cases) == 0 {
		return []Record{{
			Kind: KindEmpty,
			Body: i18n.T("render.cases_empty", "No presets found."),
		}}
	}

	ids := make([]string, 0, len(cases))
	for id := range cases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		c := cases[id]
		title := c.Title
		if title == "" {
			title = id
		}
		theme := c.Theme
		if theme == "" {
			theme = "default"
		}
		brief := c.Brief
		if brief == "" {
			brief = i18n.T("render.case_no_brief", "Brief not set.")
		}
		records = append(records, Record{
			Kind:     KindCase,
			ID:       id,
			Title:    title,
			Subtitle: playground.DisplayTheme(theme),
			Body:     brief,
			Tags:     c.Tags,
		})
	}
	return records
}

// ResultRecords projects the current session into the results region:
// the blueprint, one prompt per target model (sorted by model name),
// then checklist questions and notes.
func ResultRecords(s *playground.Session) []Record {
	if s == nil {
		return []Record{{
			Kind: KindEmpty,
			Body: i18n.T("render.result_empty", "Nothing generated yet."),
		}}
	}

	records := []Record{{
		Kind: KindBlueprint,
		ID:   s.ID,
		Body: s.Blueprint,
	}}

	models := make([]string, 0, len(s.Prompts))
	for name := range s.Prompts {
		models = append(models, name)
	}
	sort.Strings(models)
	for _, name := range models {
		records = append(records, Record{
			Kind:  KindPrompt,
			ID:    s.ID,
			Title: name,
			Body:  s.Prompts[name],
		})
	}

	for _, note := range s.ChecklistQuestions {
		records = append(records, Record{Kind: KindNote, Body: note})
	}
	for _, note := range s.Notes {
		records = append(records, Record{Kind: KindNote, Body: note})
	}

	return records
}

// LikeState describes the like control for the current session.
type LikeState struct {
	Enabled bool
	Liked   bool
	Label   string
}

// LikeButton projects the like control. With no current session the
// control is disabled.
func LikeButton(s *playground.Session) LikeState {
	if s == nil {
		return LikeState{Label: i18n.T("render.like", "Like reference")}
	}
	if s.Liked {
		return LikeState{
			Enabled: true,
			Liked:   true,
			Label:   i18n.T("render.liked", "Liked"),
		}
	}
	return LikeState{
		Enabled: true,
		Label:   i18n.T("render.like", "Like reference"),
	}
}

// ThemeOption is one selectable theme.
type ThemeOption struct {
	Key   string
	Label string
}

// ThemeOptions projects the closed theme set for the theme selector.
func ThemeOptions() []ThemeOption {
	themes := playground.Themes()
	opts := make([]ThemeOption, len(themes))
	for i, t := range themes {
		opts[i] = ThemeOption{Key: string(t), Label: playground.DisplayTheme(string(t))}
	}
	return opts
}

// timestampFormats are tried in order when parsing backend timestamps.
// The original backend emitted bare ISO-8601 without a zone.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Timestamp renders a backend timestamp for display. Unparseable
// values pass through unchanged rather than failing the projection.
func Timestamp(created string) string {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, created); err == nil {
			return t.Local().Format("Jan 02, 2006 15:04")
		}
	}
	return created
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
