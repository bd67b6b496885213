// Package watch converts capture files as they appear in a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkship/inkship/pkg/log"
	"github.com/inkship/inkship/pkg/state"
	"github.com/inkship/inkship/pkg/wpi"
)

// Converter converts one capture file and returns the artifacts it wrote.
type Converter interface {
	Convert(path string) ([]string, error)
}

// Config holds watcher settings.
type Config struct {
	Dir string

	// Debounce is how long a file must be quiet before it is converted.
	Debounce time.Duration

	// RetryInterval is the first delay after a truncated read; it doubles
	// up to 32x. RetryMax bounds the number of retries.
	RetryInterval time.Duration
	RetryMax      int
}

// Watcher monitors a directory and converts new or changed capture files.
type Watcher struct {
	cfg    Config
	conv   Converter
	repo   state.Repository
	logger log.Logger

	st      state.State
	retries map[string]*backoff
	queue   chan string

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher. logger may be nil.
func New(cfg Config, conv Converter, repo state.Repository, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:     cfg,
		conv:    conv,
		repo:    repo,
		logger:  logger,
		retries: make(map[string]*backoff),
		queue:   make(chan string, 64),
		timers:  make(map[string]*time.Timer),
	}
}

// IsCapture reports whether name looks like a capture file.
func IsCapture(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".wpi")
}

// Run scans the directory once, then converts files as they change until
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	dir, err := filepath.Abs(w.cfg.Dir)
	if err != nil {
		return err
	}
	w.cfg.Dir = dir

	w.st, err = w.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimers()

	if err := w.Scan(ctx); err != nil {
		return err
	}
	w.logger.Info("watching", log.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !IsCapture(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx, event.Name, w.cfg.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))

		case path := <-w.queue:
			w.process(ctx, path)
		}
	}
}

// Scan converts every capture file in the directory not already in the ledger.
func (w *Watcher) Scan(ctx context.Context) error {
	ents, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.cfg.Dir, err)
	}
	for _, e := range ents {
		if ctx.Err() != nil {
			return nil
		}
		if e.IsDir() || !IsCapture(e.Name()) {
			continue
		}
		w.process(ctx, filepath.Join(w.cfg.Dir, e.Name()))
	}
	return nil
}

// schedule (re)arms the timer for path. When it fires, path is queued for
// the Run loop, which does all conversions.
func (w *Watcher) schedule(ctx context.Context, path string, delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(delay, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case w.queue <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, t := range w.timers {
		t.Stop()
		delete(w.timers, p)
	}
}

// process converts path unless the ledger already covers its current version.
func (w *Watcher) process(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Debug("file vanished", log.String("file", path))
		delete(w.retries, path)
		return
	}
	if w.st.Converted(path, info) {
		return
	}

	outputs, err := w.conv.Convert(path)
	switch {
	case err == nil:
		delete(w.retries, path)
		w.st.MarkConverted(path, info, outputs)
		w.logger.Info("converted", log.String("file", path), log.Int("outputs", len(outputs)))

	case errors.Is(err, wpi.ErrTruncated):
		b, ok := w.retries[path]
		if !ok {
			b = newBackoff(w.cfg.RetryInterval, 32*w.cfg.RetryInterval)
			w.retries[path] = b
		}
		if b.Attempts() < w.cfg.RetryMax {
			delay := b.Next()
			w.logger.Debug("file incomplete, retrying",
				log.String("file", path), log.Int("attempt", b.Attempts()), log.Duration("delay", delay))
			w.schedule(ctx, path, delay)
			return
		}
		delete(w.retries, path)
		w.st.MarkFailed(path, info, err)
		w.logger.Error("conversion failed", log.String("file", path), log.Err(err))

	default:
		w.st.MarkFailed(path, info, err)
		w.logger.Error("conversion failed", log.String("file", path), log.Err(err))
	}

	if err := w.repo.Save(ctx, w.st); err != nil {
		w.logger.Warn("save state failed", log.Err(err))
	}
}

// State returns a snapshot of the ledger. Only safe when Run is not active.
func (w *Watcher) State() state.State {
	return w.st
}
