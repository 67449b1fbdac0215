package template

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"slub/librml/pkg/telemetry/logging"
)

// Watcher reloads a Manager when files in its directory change. Bursts of
// events are debounced into a single reload.
type Watcher struct {
	manager  *Manager
	watcher  *fsnotify.Watcher
	logger   *logging.Logger
	debounce *Debouncer

	// State. stopCh and doneCh belong to the current Watch run.
	mu      sync.Mutex
	running bool
	closed  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for the manager's template directory.
// A non-positive debounce interval uses the configured default of the
// manager.
func NewWatcher(manager *Manager, debounce time.Duration, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if debounce <= 0 {
		debounce = manager.cfg.Debounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		manager:  manager,
		watcher:  fsw,
		logger:   logger.With("component", "template.watcher"),
		debounce: NewDebouncer(debounce),
	}, nil
}

// Watch blocks, reloading templates on changes, until ctx is canceled or
// Stop is called. A watcher may be watched again after a context
// cancellation, but not after Stop.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("watcher stopped")
	}
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	stopCh, doneCh := make(chan struct{}), make(chan struct{})
	w.running = true
	w.stopCh, w.doneCh = stopCh, doneCh
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		if w.stopCh == stopCh {
			w.stopCh, w.doneCh = nil, nil
		}
		w.mu.Unlock()
		close(doneCh)
	}()

	dir := w.manager.Dir()
	if err := w.addDirectory(dir); err != nil {
		return fmt.Errorf("failed to watch template directory: %w", err)
	}

	w.logger.Info("Template watcher started",
		"dir", dir,
		"debounce_ms", w.debounce.interval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Template watcher stopped (context cancelled)")
			return nil

		case <-stopCh:
			w.logger.Info("Template watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Has(fsnotify.Create) {
				w.watchIfDirectory(event.Name)
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("Template file event", "path", event.Name, "op", event.Op.String())

			w.debounce.Trigger(func() {
				// Reload logs its own failures.
				_ = w.manager.Reload(TriggerWatch)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("Template watcher error", "error", err)
		}
	}
}

// Stop stops a running watcher and releases its resources. Calling Stop
// more than once is a no-op.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	stopCh, doneCh := w.stopCh, w.doneCh
	w.stopCh, w.doneCh = nil, nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}

	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// addDirectory adds a directory and all non-hidden subdirectories.
func (w *Watcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.logger.Debug("Watching directory", "path", path)
		return nil
	})
}

func (w *Watcher) watchIfDirectory(path string) {
	if statDir(path) != nil || strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	if err := w.addDirectory(path); err != nil {
		w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
	}
}

// shouldProcessEvent reports whether event touches a template or a sidecar.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	lower := strings.ToLower(base)
	return strings.HasSuffix(lower, MetaSuffix) ||
		strings.EqualFold(filepath.Ext(base), w.manager.Extension())
}

// Debouncer collects rapid events and runs the last callback only after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback after the interval, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.callback = nil
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
