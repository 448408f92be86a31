package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a full generation whenever a watched input file
// changes. Changes are debounced so editor save bursts trigger one run.
// Regeneration is always full; there is no partial or incremental mode.
type Watcher struct {
	paths    []string
	debounce time.Duration
	run      func(ctx context.Context) error
	logger   *slog.Logger
}

// NewWatcher creates a watcher over the given input files. run is invoked
// after each debounced change burst.
func NewWatcher(paths []string, debounce time.Duration, run func(ctx context.Context) error, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		run:      run,
		logger:   logger,
	}
}

// Watch blocks until the context is cancelled, regenerating on changes.
// An initial generation runs before watching starts.
func (w *Watcher) Watch(ctx context.Context) error {
	if err := w.run(ctx); err != nil {
		return fmt.Errorf("initial generation: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range w.paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	w.logger.Info("Watching for changes", "paths", w.paths, "debounce", w.debounce)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug("Input changed", "path", event.Name, "op", event.Op.String())

			// Restart the debounce window on every event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

			// Some editors replace the file on save; re-add the path so
			// subsequent writes are still observed.
			_ = watcher.Add(event.Name)

		case <-timerC:
			timer = nil
			timerC = nil

			if err := w.run(ctx); err != nil {
				w.logger.Warn("Regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}
