package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/takeoff/internal/catalog"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCatalog Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Watcher polls the catalog file at a fixed interval and publishes an event
// whenever its size or modification time changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. An empty path starts no poller and
// the events channel is closed straight away.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	if path != "" && interval > 0 {
		w.startCatalogPoller()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

const reloadSpacing = 250 * time.Millisecond

type fileStamp struct {
	size    int64
	modTime time.Time
	missing bool
}

func (w *Watcher) startCatalogPoller() {
	limiter := newReloadLimiter(reloadSpacing)
	var last fileStamp
	first := true
	w.wg.Add(1)
	go w.poll(KindCatalog, func(ctx context.Context) (interface{}, bool, error) {
		stamp := stat(w.path)
		if !first && stamp == last {
			return nil, false, nil
		}
		first = false
		last = stamp
		if !limiter.wait(ctx) {
			return nil, false, nil
		}
		cat, err := catalog.Load(w.path)
		return cat, true, err
	})
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{missing: true}
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Path: w.path, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
