package carddb

import (
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/mtgsim/manasim/internal/logger"
	"github.com/mtgsim/manasim/pkg/card"
)

// Loader reloads a Database from whatever backing store a path names.
type Loader func(path string) (Database, error)

// Watched wraps a Database and hot-swaps it when the backing file
// changes on disk. The core simulation never needs this — it is purely a
// convenience for a long-lived host (e.g. a server embedding this engine)
// that wants a refreshed card corpus without a process restart.
type Watched struct {
	path    string
	load    Loader
	current atomic.Pointer[Database]
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// NewWatched loads path once via load, then watches it for writes and
// atomically swaps in a freshly loaded Database on each change.
func NewWatched(path string, load Loader) (*Watched, error) {
	db, err := load(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watched{path: path, load: load, watcher: watcher}
	w.current.Store(&db)

	go w.watch()

	return w, nil
}

func (w *Watched) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fresh, err := w.load(w.path)
			if err != nil {
				logger.LogMeta("card database hot-reload failed for %s: %v", w.path, err)
				continue
			}
			w.current.Store(&fresh)
			logger.LogMeta("card database hot-reloaded from %s", w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.LogMeta("card database watcher error: %v", err)
		}
	}
}

// Close stops the background watcher goroutine.
func (w *Watched) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}

func (w *Watched) snapshot() Database {
	return *w.current.Load()
}

func (w *Watched) CardFromName(name string) (card.Card, bool) { return w.snapshot().CardFromName(name) }
func (w *Watched) GroupByName(name string) []card.Card        { return w.snapshot().GroupByName(name) }
func (w *Watched) GroupBySet(set string) []card.Card           { return w.snapshot().GroupBySet(set) }
func (w *Watched) All() []card.Card                            { return w.snapshot().All() }
func (w *Watched) Size() int                                   { return w.snapshot().Size() }
