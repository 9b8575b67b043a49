// Package watch reports changes to a single file
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must be quiet before a change is reported
const DefaultDebounce = 100 * time.Millisecond

// Watcher delivers change notifications for one file
type Watcher interface {
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// FileWatcher watches a file through its parent directory, so editors that
// replace the file on save are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
	errors   chan error
	done     chan struct{}
	once     sync.Once
}

// New starts watching path. A burst of events is reported as one change
// once the file has been quiet for debounce.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &FileWatcher{
		watcher:  fsWatcher,
		path:     abs,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *FileWatcher) watch() {
	defer close(w.changes)
	defer close(w.errors)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(w.debounce)
			}

		case <-timer.C:
			// A pending notification already covers this change.
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// Path returns the absolute path being watched
func (w *FileWatcher) Path() string {
	return w.path
}

// Changes returns a channel that receives a value after the file changes
func (w *FileWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns a channel of errors that occur during watching
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Both channels are closed once the watch loop exits.
func (w *FileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
