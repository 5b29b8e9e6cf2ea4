// Package watch re-runs work when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pxlforge/pxl"
)

// DefaultDebounce is the quiet period after the last event before a change fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to one file, debounced.
//
// The containing directory is watched rather than the file itself, so
// editors that save by renaming a temporary file are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// New starts watching the directory of path. A non-positive debounce uses
// DefaultDebounce. A nil logger uses pxl.Logger().
func New(path string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = pxl.Logger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{watcher: w, path: abs, debounce: debounce, log: log}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after every debounced burst of writes, creates or
// renames of the file until ctx is done. Errors from onChange and from
// the watcher are logged and do not stop the loop. Run closes the watcher
// before returning ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	defer func() { _ = w.watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.log.Debug("watch: file changed", slog.String("path", w.path))
			if err := onChange(); err != nil {
				w.log.Warn("watch: change handler failed", slog.String("path", w.path), slog.Any("err", err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch: watcher error", slog.Any("err", err))
		}
	}
}

// matches reports whether event is a content change of the watched file.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return filepath.Base(event.Name) == filepath.Base(w.path)
	}
	return abs == w.path
}
