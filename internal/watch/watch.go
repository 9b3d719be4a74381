// Package watch re-runs a conversion whenever the source SVG changes.
// The watcher monitors the file's parent directory (editors often replace
// files by rename, which drops a watch on the file itself) and debounces
// bursts of events from a single save.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher triggers a callback when one file changes.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	target      string // absolute path of the watched file
	debounceDur time.Duration
	lastFired   time.Time
	onChange    func(ctx context.Context)
	log         *zap.Logger
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a watcher for path. onChange runs on the watcher goroutine,
// so a slow conversion naturally suppresses events that arrive meanwhile.
func New(path string, onChange func(ctx context.Context), log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		watcher:     fw,
		target:      abs,
		debounceDur: 300 * time.Millisecond,
		onChange:    onChange,
		log:         log,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.target)); err != nil {
		return err
	}
	w.log.Info("watching for changes", zap.String("file", w.target))

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.target {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastFired) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.lastFired = now
	w.mu.Unlock()

	w.log.Debug("source changed", zap.String("op", event.Op.String()))
	w.onChange(ctx)
}

// Stop halts the event loop and releases the underlying watcher. Safe to
// call once; blocks until the loop exits.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}
