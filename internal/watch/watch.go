// Package watch recomputes comparisons when prompt-set files change on disk.
// Events are debounced per file so editor save bursts trigger one recompare,
// not five.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"promptlens/internal/logging"
)

// Handler is invoked with the path of a changed file after the debounce
// window closes. Handlers run on the watcher goroutine's timers and must not
// block for long.
type Handler func(path string)

// Watcher observes a fixed set of files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	paths    map[string]struct{} // absolute paths being observed
	debounce time.Duration
	handler  Handler
	log      *zap.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New builds a Watcher over the given files. Directories containing the
// files are registered with fsnotify (many editors replace files on save, so
// watching the file inode directly misses events).
func New(paths []string, debounce time.Duration, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		handler:  handler,
		log:      logging.Get(logging.CategoryWatch),
		timers:   make(map[string]*time.Timer),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run blocks processing events until the context is canceled. It first fires
// the handler once per observed file so the caller starts from fresh output.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.initial(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.drainTimers()
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// initial recompares every observed file concurrently. Engine calls are
// independent pure computations, so a bounded group is safe.
func (w *Watcher) initial(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for p := range w.paths {
		p := p
		g.Go(func() error {
			w.handler(p)
			return nil
		})
	}
	return g.Wait()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	if _, observed := w.paths[abs]; !observed {
		return
	}

	w.log.Debug("file changed", zap.String("path", abs), zap.String("op", event.Op.String()))

	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[abs]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.timers[abs] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, abs)
		w.mu.Unlock()
		w.handler(abs)
	})
}

func (w *Watcher) drainTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, timer := range w.timers {
		timer.Stop()
		delete(w.timers, p)
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.drainTimers()
	return w.fsw.Close()
}
