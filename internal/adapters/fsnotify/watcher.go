// Package fsnotify implements the ports.PlanWatcher interface using
// github.com/fsnotify/fsnotify. It watches the plan file's parent
// directory rather than the file itself: editors save by
// write-temp-then-rename, which replaces the inode a direct file watch
// would cling to. Events for anything but the plan path are dropped, and
// save bursts are debounced.
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses the burst of events one logical save emits.
const debounceInterval = 300 * time.Millisecond

// Watcher implements ports.PlanWatcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new plan file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange is called with the watched path
// after each settled change to the file.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("plan file: %w", err)
	}
	if err := w.fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		var lastFire time.Time
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				// Write covers in-place saves, Create covers the rename
				// step of atomic saves. Remove/Chmod alone leave nothing
				// worth re-reading.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				// Debounce: skip if the file fired recently
				now := time.Now()
				if now.Sub(lastFire) < debounceInterval {
					continue
				}
				lastFire = now

				onChange(target)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; the next event still arrives.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
