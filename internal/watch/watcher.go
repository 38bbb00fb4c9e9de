// Package watch delivers coalesced change notifications for the directory a
// view is displaying, so the browser can refresh when the filesystem changes
// under it.
package watch

import (
	"fmt"
	"sync"

	"dired/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the single displayed directory using fsnotify. Events are
// coalesced into an empty-struct signal on Changes; a refresh re-lists the
// whole directory anyway, so per-event detail is not preserved.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	stopChan  chan struct{}

	mutex   sync.Mutex
	dir     string
	running bool
}

// New creates a watcher with nothing watched yet.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Watch switches the watched directory. The previous directory, if any, is
// unwatched first; navigation replaces the watch rather than accumulating.
func (w *Watcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir != "" {
		// Removing a vanished directory only returns a lookup error.
		_ = w.fsWatcher.Remove(w.dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	log.WithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Changes returns the channel that signals the watched directory changed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins the event loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) ||
					event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Write) {
					// Coalesce: one pending signal is enough.
					select {
					case w.changes <- struct{}{}:
					default:
					}
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.WithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and closes the change channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.WithFields(log.F("error", err)).Error("error closing fsnotify watcher")
	}
	w.running = false
	close(w.changes)
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}
