package cases

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chromasynth/go-seadream/internal/tuilog"
)

// debounce coalesces editor write bursts into a single reload event.
const debounce = 500 * time.Millisecond

// Watcher monitors the catalog document and signals when it changes so
// the client can reload its presets.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given catalog document.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, watcher: fw}, nil
}

// Start begins watching and returns a channel that receives one value
// per (debounced) change to the document. The channel closes when the
// context is canceled. The parent directory is watched rather than the
// file itself so replace-by-rename saves are seen too.
func (w *Watcher) Start(ctx context.Context) (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.watcher.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)
	go w.loop(ctx, events)
	return events, nil
}

func (w *Watcher) loop(ctx context.Context, events chan<- struct{}) {
	defer close(events)
	defer w.watcher.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			tuilog.Log.Debug("Catalog document changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			select {
			case events <- struct{}{}:
			default: // a reload is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tuilog.Log.Warn("Catalog watcher error", "error", err)
		}
	}
}
