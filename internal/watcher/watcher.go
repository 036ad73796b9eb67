// Package watcher tells the explorer when the open directory or its
// thumbnails change, so cells can switch from icon to thumbnail as soon as
// the thumbnail pipeline writes a file.
package watcher

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"sdexplorer/internal/constants"
	apperrors "sdexplorer/internal/errors"
)

// Option customizes a Watcher
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithDispatcher sets how onChange is run. The default hands it to the
// Fyne main thread.
func WithDispatcher(dispatch func(func())) Option {
	return func(w *Watcher) { w.dispatch = dispatch }
}

// Watcher coalesces file system events on a set of directories into a
// single onChange call per burst.
type Watcher struct {
	onChange func()
	debounce time.Duration
	dispatch func(func())
	logger   zerolog.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	dirs    []string        // requested directories being watched
	pending []string        // requested directories that do not exist yet
	parents map[string]bool // existing ancestors watched until a pending directory appears
	timer   *time.Timer
	done    chan struct{}
	running bool
}

// New creates a stopped watcher
func New(onChange func(), logger zerolog.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		onChange: onChange,
		debounce: constants.WatcherDebounce,
		dispatch: fyne.Do,
		logger:   logger.With().Str("component", "watcher").Logger(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Start watches dirs, replacing whatever was watched before. A directory
// that does not exist yet is picked up once it is created: its nearest
// existing ancestor is watched until then.
func (w *Watcher) Start(dirs ...string) error {
	w.Stop()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.NewWatcherError("start", "", "cannot create watcher", err)
	}

	var watched, pending []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if !isDir(dir) {
			w.logger.Debug().Str("dir", dir).Msg("waiting for directory to appear")
			pending = append(pending, dir)
			continue
		}
		if err := fsw.Add(dir); err != nil {
			w.logger.Warn().Err(apperrors.NewWatcherError("add", dir, "cannot watch directory", err)).Send()
			continue
		}
		watched = append(watched, dir)
	}

	done := make(chan struct{})
	w.mu.Lock()
	w.fsw = fsw
	w.dirs = watched
	w.pending = pending
	w.parents = make(map[string]bool)
	w.done = done
	w.running = true
	w.resolvePendingLocked()
	w.mu.Unlock()

	go w.eventLoop(fsw, done)
	w.logger.Debug().Strs("dirs", watched).Strs("pending", pending).Msg("watcher started")
	return nil
}

// Stop stops watching. Calling Stop on a stopped watcher does nothing.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fsw := w.fsw
	w.fsw = nil
	w.dirs = nil
	w.pending = nil
	w.parents = nil
	w.mu.Unlock()

	if err := fsw.Close(); err != nil {
		w.logger.Debug().Err(err).Msg("closing fsnotify watcher")
	}
	w.logger.Debug().Msg("watcher stopped")
}

// Dirs returns the directories currently watched
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.dirs...)
}

// Pending returns the requested directories that do not exist yet
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.pending...)
}

// Running reports whether the watcher is started
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) eventLoop(fsw *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("fs event")
			if w.relevant(event) {
				w.schedule()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// relevant reports whether event should trigger onChange. Events in a
// watched ancestor only matter when they make a pending directory appear.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return false
	}
	if event.Has(fsnotify.Create) && len(w.pending) > 0 && w.resolvePendingLocked() {
		return true
	}
	return slices.Contains(w.dirs, filepath.Dir(event.Name))
}

// resolvePendingLocked starts watching pending directories that now exist
// and moves ancestor watches down toward the rest. It reports whether any
// pending directory appeared.
func (w *Watcher) resolvePendingLocked() bool {
	appeared := false
	for attempt := 0; ; attempt++ {
		var remaining []string
		for _, dir := range w.pending {
			if isDir(dir) {
				if err := w.fsw.Add(dir); err == nil {
					w.logger.Debug().Str("dir", dir).Msg("directory appeared")
					w.dirs = append(w.dirs, dir)
					appeared = true
					continue
				}
			}
			remaining = append(remaining, dir)
		}
		w.pending = remaining
		w.watchParentsLocked()

		// A directory created while the ancestor watch was moving has no event
		if !slices.ContainsFunc(w.pending, isDir) || attempt > len(w.pending) {
			return appeared
		}
	}
}

func (w *Watcher) watchParentsLocked() {
	needed := make(map[string]bool)
	for _, dir := range w.pending {
		if parent := existingAncestor(dir); parent != "" {
			needed[parent] = true
		}
	}

	for parent := range w.parents {
		if !needed[parent] {
			_ = w.fsw.Remove(parent)
			delete(w.parents, parent)
		}
	}
	for parent := range needed {
		if w.parents[parent] || slices.Contains(w.dirs, parent) {
			continue
		}
		if err := w.fsw.Add(parent); err != nil {
			w.logger.Debug().Err(err).Str("dir", parent).Msg("cannot watch ancestor")
			continue
		}
		w.parents[parent] = true
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// existingAncestor returns the closest parent of path that is a directory
func existingAncestor(path string) string {
	prev := path
	for dir := filepath.Dir(path); dir != prev; prev, dir = dir, filepath.Dir(dir) {
		if isDir(dir) {
			return dir
		}
	}
	return ""
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	w.timer = nil
	running := w.running
	w.mu.Unlock()

	if running && w.onChange != nil {
		w.dispatch(w.onChange)
	}
}
