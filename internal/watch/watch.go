// Package watch rebuilds a table of contents whenever its input file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/itsmostafa/tocgen/internal/toc"
)

// Defaults for a Watcher.
const (
	DefaultDebounce = 200 * time.Millisecond
	DefaultAttempts = 3
	DefaultDelay    = 100 * time.Millisecond
)

// Watcher calls a rebuild function once at start and again after every
// change to a single file.
type Watcher struct {
	path     string
	rebuild  func() error
	debounce time.Duration
	attempts uint
	delay    time.Duration
	logger   *slog.Logger
	trigger  chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long to wait for writes to settle before rebuilding.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithRetry sets how often, and how far apart, a failed rebuild is retried.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(w *Watcher) {
		w.attempts = attempts
		w.delay = delay
	}
}

// WithLogger sets the logger for rebuild failures and file events.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) { w.logger = logger }
}

// New creates a Watcher for path.
func New(path string, rebuild func() error, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		rebuild:  rebuild,
		debounce: DefaultDebounce,
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
		logger:   slog.Default(),
		trigger:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.attempts == 0 {
		w.attempts = 1
	}
	return w
}

// Trigger requests a rebuild without a file event. It never blocks.
func (w *Watcher) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Run builds once, then rebuilds on every change until ctx is cancelled.
// Rebuild failures are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory so atomic replacements (write temp, rename) are seen.
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	w.build(ctx)

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				w.logger.Debug("ignoring file event", "file", event.Name, "op", event.Op.String())
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-w.trigger:
			w.build(ctx)

		case <-timerC:
			timerC = nil
			w.build(ctx)
		}
	}
}

// build runs the rebuild function, retrying while the input looks like a
// file that is still being written.
func (w *Watcher) build(ctx context.Context) {
	err := retry.Do(
		w.rebuild,
		retry.Context(ctx),
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			w.logger.Debug("retrying rebuild", "file", w.path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil && ctx.Err() == nil {
		w.logger.Error("rebuild failed", "file", w.path, "error", err)
	}
}

// isTransient reports errors a partially written or replaced file produces.
func isTransient(err error) bool {
	return errors.Is(err, toc.ErrMalformedInput) || errors.Is(err, toc.ErrFileNotFound)
}
