package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultBufferSize is the number of events held before dropping.
const defaultBufferSize = 16

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string // absolute path of the file
	dir     string // directory actually watched

	events chan Event
	errors chan error

	dropped int

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching the file at path.
func New(path string) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(absPath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		path:    absPath,
		dir:     dir,
		events:  make(chan Event, defaultBufferSize),
		errors:  make(chan error, defaultBufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Poll returns a pending event without blocking.
func (w *FileWatcher) Poll() (Event, bool) {
	select {
	case ev, ok := <-w.events:
		return ev, ok
	default:
		return Event{}, false
	}
}

// PollError returns a pending watcher error without blocking, or nil.
func (w *FileWatcher) PollError() error {
	select {
	case err := <-w.errors:
		return err
	default:
		return nil
	}
}

// Dropped returns the number of events dropped on a full buffer.
func (w *FileWatcher) Dropped() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

// Close stops the watcher. Calling it again is a no-op.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop forwards fsnotify events for the watched file.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFSEvent converts and forwards an event naming the file.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}

	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	event := Event{
		Path:      w.path,
		Op:        op,
		Timestamp: time.Now(),
	}

	select {
	case w.events <- event:
	default:
		w.mu.Lock()
		w.dropped++
		w.mu.Unlock()
	}
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
