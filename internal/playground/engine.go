package playground

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/chromasynth/go-seadream/internal/i18n"
	"github.com/chromasynth/go-seadream/internal/tuilog"
)

// Gateway is the remote surface the engine drives. Every call is a
// single attempt; the engine never retries.
type Gateway interface {
	History(ctx context.Context) ([]Session, error)
	References(ctx context.Context) ([]Reference, error)
	Generate(ctx context.Context, req GenerateRequest) (Session, error)
	SetLiked(ctx context.Context, sessionID string, liked bool) error
}

// CatalogSource supplies the preset catalog.
type CatalogSource interface {
	Load(ctx context.Context) (map[string]Case, error)
}

// StatusLevel classifies a user-visible status message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

// StatusFunc receives user-visible status messages. It must be safe to
// call from the goroutine running a transition.
type StatusFunc func(level StatusLevel, message string)

// fieldError is satisfied by the gateway's structured validation
// failure; the engine surfaces its field paths verbatim.
type fieldError interface {
	error
	FieldPaths() []string
}

// Engine orchestrates state transitions between user actions, the
// gateway, and the store. Each exported method is one named transition;
// a transition's sub-steps run sequentially, but nothing serializes two
// concurrently triggered transitions against each other — when two like
// toggles race, the last response wins.
type Engine struct {
	store   *Store
	gw      Gateway
	catalog CatalogSource
	notify  StatusFunc
}

// NewEngine wires an engine to its collaborators. notify may be nil.
func NewEngine(store *Store, gw Gateway, catalog CatalogSource, notify StatusFunc) *Engine {
	if notify == nil {
		notify = func(StatusLevel, string) {}
	}
	return &Engine{store: store, gw: gw, catalog: catalog, notify: notify}
}

// Store exposes the engine's store for projection.
func (e *Engine) Store() *Store { return e.store }

// Bootstrap runs once at client start: load the preset catalog, then
// history and references. Every sub-load is a single attempt and
// degrades on failure, so bootstrap always completes.
func (e *Engine) Bootstrap(ctx context.Context) {
	cases, err := e.catalog.Load(ctx)
	if err != nil {
		tuilog.Log.Warn("Preset catalog unavailable", "error", err)
		e.store.ReplaceCases(nil)
		e.notify(StatusError, i18n.T("status.cases_unavailable", "Could not load presets."))
	} else {
		e.store.ReplaceCases(cases)
	}

	e.RefreshHistory(ctx)
}

// ReloadCatalog re-reads the preset catalog, e.g. after the catalog
// document changed on disk. A previously selected case id is left in
// place even if the new catalog no longer contains it.
func (e *Engine) ReloadCatalog(ctx context.Context) {
	cases, err := e.catalog.Load(ctx)
	if err != nil {
		tuilog.Log.Warn("Preset catalog reload failed", "error", err)
		e.notify(StatusError, i18n.T("status.cases_unavailable", "Could not load presets."))
		return
	}
	e.store.ReplaceCases(cases)
	e.notify(StatusInfo, i18n.T("status.cases_reloaded", "Presets reloaded."))
}

// Generate validates the draft, submits it, and on success installs the
// new session and refreshes history. Validation and backend failures
// leave the view state untouched. The pending flag is cleared on every
// exit path.
func (e *Engine) Generate(ctx context.Context) {
	d := e.store.Draft()
	brief := strings.TrimSpace(d.Brief)
	if brief == "" {
		e.notify(StatusError, i18n.T("status.brief_required", "Enter a valid briefing."))
		return
	}

	e.store.SetGenerating(true)
	defer e.store.SetGenerating(false)

	e.notify(StatusInfo, i18n.T("status.generating", "Generating prompts..."))

	view := e.store.View()
	req := GenerateRequest{
		Brief:  brief,
		Theme:  d.Theme,
		Model:  d.Model,
		CaseID: view.SelectedCaseID,
		Tags:   ParseTags(d.TagsRaw),
	}

	sess, err := e.gw.Generate(ctx, req)
	if err != nil {
		var fe fieldError
		if errors.As(err, &fe) {
			e.notify(StatusError, i18n.Tf(
				"status.generate_incomplete",
				"The model returned incomplete fields. Review manually: %s",
				JoinTags(fe.FieldPaths()),
			))
			return
		}
		tuilog.Log.Error("Generate failed", "error", err)
		e.notify(StatusError, err.Error())
		return
	}

	e.store.SetCurrent(sess)
	e.RefreshHistory(ctx)
	e.notify(StatusSuccess, i18n.T("status.generated", "Prompt generated successfully!"))
}

// RefreshHistory re-fetches history and references together and swaps
// both store slices in one replacement. Either fetch failing degrades
// that list to empty rather than aborting the refresh.
func (e *Engine) RefreshHistory(ctx context.Context) {
	var (
		history    []Session
		references []Reference
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := e.gw.History(gctx)
		if err != nil {
			tuilog.Log.Warn("History fetch failed", "error", err)
			return nil
		}
		history = items
		return nil
	})
	g.Go(func() error {
		items, err := e.gw.References(gctx)
		if err != nil {
			tuilog.Log.Warn("References fetch failed", "error", err)
			return nil
		}
		references = items
		return nil
	})
	g.Wait()

	e.store.ReplaceLists(history, references)
}

// ToggleLike asks the backend to set the liked flag, and only applies
// the change locally once confirmed: history is refreshed, and the
// current session picks up the flag if it is the toggled one. On
// failure nothing changes.
func (e *Engine) ToggleLike(ctx context.Context, sessionID string, liked bool) {
	if err := e.gw.SetLiked(ctx, sessionID, liked); err != nil {
		tuilog.Log.Warn("Like toggle failed", "session", sessionID, "error", err)
		e.notify(StatusError, i18n.T("status.like_failed", "Could not update the like."))
		return
	}

	e.RefreshHistory(ctx)
	e.store.MarkCurrentLiked(sessionID, liked)
}

// LoadCase copies a preset into the draft form. The preset's theme only
// replaces the current selection when it is a member of the theme set;
// tags are joined back into the raw form field. Pure local mutation.
func (e *Engine) LoadCase(id string) {
	view := e.store.View()
	c, ok := view.Cases[id]
	if !ok {
		e.notify(StatusError, i18n.T("status.case_missing", "Preset not found."))
		return
	}

	d := view.Draft
	d.Brief = c.Brief
	if ValidTheme(c.Theme) {
		d.Theme = c.Theme
	}
	d.TagsRaw = JoinTags(c.Tags)
	e.store.SetDraft(d)
	e.store.SelectCase(id)

	title := c.Title
	if title == "" {
		title = id
	}
	e.notify(StatusSuccess, i18n.Tf("status.case_loaded", "Preset %q loaded.", title))
}

// LoadSession copies a past session's inputs into the draft form, with
// the same theme guard as LoadCase. The selected case id comes from the
// session itself and may be empty. Pure local mutation.
func (e *Engine) LoadSession(sess Session) {
	d := e.store.Draft()
	d.Brief = sess.Brief
	if ValidTheme(sess.Theme) {
		d.Theme = sess.Theme
	}
	d.TagsRaw = JoinTags(sess.Tags)
	e.store.SetDraft(d)
	e.store.SelectCase(sess.CaseID)

	e.notify(StatusSuccess, i18n.T("status.session_loaded", "Session loaded into the form."))
}

// SwitchTab changes the active history tab. Rendering works off the
// already-loaded history slice; no network call happens here.
func (e *Engine) SwitchTab(tab HistoryTab) {
	if tab != TabLiked {
		tab = TabAll
	}
	e.store.SetTab(tab)
}
