package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file change event.
type EventType int

const (
	DocumentChanged EventType = iota
	DocumentRemoved
)

// Event represents a change to a watched document.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches an opened document for changes. Editors usually replace
// the file on save (write to temp, rename over), so the document's directory
// is watched rather than the file itself.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Event
	Errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool

	docPath string // absolute path of the watched document
}

// New creates a new file watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		Events:  make(chan Event, 100),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// WatchDocument registers the document to watch.
func (w *Watcher) WatchDocument(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("document does not exist: %s", abs)
	}

	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch document directory: %w", err)
	}

	w.docPath = abs
	return nil
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.eventLoop()
}

// eventLoop processes file system events.
func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			e := w.classifyEvent(event)
			if e != nil {
				// Non-blocking send
				select {
				case w.Events <- *e:
				default:
					// Channel full, skip event
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Non-blocking error send
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// classifyEvent maps an fsnotify event onto the watched document, filtering
// out changes to unrelated files in the same directory.
func (w *Watcher) classifyEvent(event fsnotify.Event) *Event {
	abs, err := filepath.Abs(event.Name)
	if err != nil || abs != w.docPath {
		return nil
	}

	// Write for in-place edits, Create for the rename-over-save pattern.
	if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
		return &Event{Type: DocumentChanged, Path: abs}
	}
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		return &Event{Type: DocumentRemoved, Path: abs}
	}
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.done)
	w.running = false
	return w.watcher.Close()
}

// Close is an alias for Stop.
func (w *Watcher) Close() error {
	return w.Stop()
}
