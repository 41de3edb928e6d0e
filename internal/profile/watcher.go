package profile

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"screencmp/internal/config"
	"screencmp/internal/logger"
)

// ReloadEvent carries a freshly parsed profile after the file changed on
// disk.
type ReloadEvent struct {
	Profile *config.Profile
}

// Watcher watches the data directory for profile changes so a running TUI
// can pick up new seed screens or a palette override without restarting.
//
// The debounce state is shared between the watch goroutine, the timer
// callback goroutine, and Stop's caller, so it sits behind a mutex.
type Watcher struct {
	watcher *fsnotify.Watcher
	reloads chan ReloadEvent
	done    chan struct{}

	mu            sync.Mutex
	debounceTimer *time.Timer
	pending       bool
}

// NewWatcher creates a profile watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		reloads: make(chan ReloadEvent, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the data directory. Editors replace files by
// rename, so the directory is watched rather than the profile path itself.
func (w *Watcher) Start() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return fmt.Errorf("failed to get data directory: %w", err)
	}

	if err := w.watcher.Add(dataDir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher. The reloads channel is left open because a
// debounced reload may still be in flight; receivers are unblocked at
// process exit.
func (w *Watcher) Stop() {
	close(w.done)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.pending = false
	w.mu.Unlock()
	w.watcher.Close()
}

// Reloads returns the channel for profile reload notifications.
func (w *Watcher) Reloads() <-chan ReloadEvent {
	return w.reloads
}

// watch is the main event loop.
func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != config.ProfileName {
				continue
			}

			w.mu.Lock()
			w.pending = true
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, func() {
				w.processPending()
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("profile watcher error", "error", err)
		}
	}
}

// processPending reloads the profile once the debounce window closes.
func (w *Watcher) processPending() {
	w.mu.Lock()
	if !w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	path, err := config.ProfilePath()
	if err != nil {
		logger.Error("profile reload: cannot resolve path", "error", err)
		return
	}

	p, err := config.LoadProfile(path)
	if err != nil {
		// A half-written or malformed profile is skipped; the next write
		// will be picked up.
		logger.Warn("profile reload: parse failed, keeping current state", "error", err)
		return
	}

	select {
	case <-w.done:
		return
	default:
	}

	logger.Info("profile reloaded", "screens", len(p.Screens), "palette", len(p.Palette))
	select {
	case w.reloads <- ReloadEvent{Profile: p}:
	default:
	}
}
