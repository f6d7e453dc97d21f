package reconcile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/grovetools/core/pkg/workspace"
)

// watchedBasenames are the files whose external edits should trigger a
// refresh without waiting for the next scheduler tick (spec §11 domain
// stack: fsnotify watches marker files and the ignore file).
var watchedBasenames = map[string]bool{
	workspace.AgentMarkerFile: true,
	workspace.BaseMarkerFile:  true,
	".gitignore":              true,
}

// Watcher watches a set of worktree directories for marker-file and
// ignore-file changes, emitting on Events whenever one occurs. The set of
// watched directories is refreshed by calling SetDirs after each
// reconciliation pass, so newly created or removed worktrees are tracked.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  <-chan struct{}
	events  chan struct{}
	watched map[string]bool
}

// NewWatcher starts an fsnotify watcher with no directories yet watched;
// call SetDirs after the first Reconcile to seed it.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	events := make(chan struct{}, 1)
	w := &Watcher{fs: fsw, Events: events, events: events, watched: make(map[string]bool)}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !watchedBasenames[filepath.Base(ev.Name)] {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
				// A refresh is already pending; coalesce.
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// SetDirs reconciles the watched directory set against dirs, adding newly
// seen worktree roots and removing ones that disappeared (e.g. a deleted
// workspace).
func (w *Watcher) SetDirs(dirs []string) {
	want := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		want[d] = true
		if !w.watched[d] {
			if err := w.fs.Add(d); err == nil {
				w.watched[d] = true
			}
		}
	}
	for d := range w.watched {
		if !want[d] {
			_ = w.fs.Remove(d)
			delete(w.watched, d)
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
