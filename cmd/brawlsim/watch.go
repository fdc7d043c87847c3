package main

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
// Editors save in bursts; reporting after the last write avoids reading a
// half written file.
const settle = 100 * time.Millisecond

// Watcher reports changed definition and script files under some directories,
// once per burst of writes.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error

	settle  time.Duration
	settled chan string
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(settle, dirs...)
}

func newWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		settle:  quiet,
		settled: make(chan string),
		closeCh: make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run is the only sender on Events and Errors and closes both on exit.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)
	defer w.stopPending()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if watched(event) {
				w.touch(event.Name)
			}
		case path := <-w.settled:
			select {
			case w.Events <- path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// touch restarts path's quiet period.
func (w *Watcher) touch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Reset(w.settle)
		return
	}
	w.pending[path] = time.AfterFunc(w.settle, func() { w.fire(path) })
}

func (w *Watcher) fire(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	w.mu.Unlock()

	select {
	case w.settled <- path:
	case <-w.closeCh:
	}
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

func watched(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return isDefinitionFile(event.Name) || isScriptFile(event.Name)
}

func isDefinitionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
