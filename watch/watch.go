// Package watch re-runs a resolution when one of the files it read changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Config struct {
	// DebounceInterval is the quiet period after the last change before
	// onChange runs (default: 100ms)
	DebounceInterval time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		DebounceInterval: 100 * time.Millisecond,
	}
}

// Watcher watches a set of files through their directories, so files
// replaced by rename are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
	running bool

	stopOnce sync.Once
	stopErr  error
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch calls onChange after changes to files settle and then watches the
// files onChange returns instead. An error from onChange is logged and the
// current files stay watched. Watch blocks until ctx is done or Stop is
// called.
func (w *Watcher) Watch(ctx context.Context, files []string, onChange func() ([]string, error)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	err := w.retarget(files)
	w.mu.Unlock()

	defer close(w.doneCh)
	if err != nil {
		return err
	}
	w.logger.Info("watching", "files", len(files), "debounce", w.config.DebounceInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.shouldProcessEvent(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			w.debounce.Trigger(func() {
				w.logger.Info("changed", "path", event.Name)
				next, err := onChange()
				if err != nil {
					w.logger.Error("reload failed", "error", err)
					return
				}
				w.mu.Lock()
				defer w.mu.Unlock()
				if err := w.retarget(next); err != nil {
					w.logger.Error("watch failed", "error", err)
				}
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Files returns the currently watched files.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	res := make([]string, 0, len(w.files))
	for f := range w.files {
		res = append(res, f)
	}
	return res
}

// Stop ends Watch and releases the watcher.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()
		if running {
			<-w.doneCh
		}
		w.debounce.Stop()
		if err := w.watcher.Close(); err != nil {
			w.stopErr = fmt.Errorf("failed to close watcher: %w", err)
		}
	})
	return w.stopErr
}

// retarget makes files the watched set. w.mu is held.
func (w *Watcher) retarget(files []string) error {
	files2 := make(map[string]bool, len(files))
	dirs := make(map[string]bool, len(files))
	for _, f := range files {
		f = filepath.Clean(f)
		files2[f] = true
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		w.logger.Debug("watching directory", "path", dir)
	}
	for dir := range w.dirs {
		if !dirs[dir] {
			_ = w.watcher.Remove(dir)
		}
	}
	w.files = files2
	w.dirs = dirs
	return nil
}

func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[filepath.Clean(event.Name)]
}
