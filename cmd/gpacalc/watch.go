package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay is how long to wait for more changes before re-evaluating.
// Editors often emit several events per save.
const debounceDelay = 200 * time.Millisecond

func watchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <results-file>",
		Short: "Re-evaluate the results file whenever it changes",
		Long: `Watch prints the report, then re-evaluates and re-prints it every time
the results file is written, until interrupted. Parse failures are logged
and watching continues, so the file can be fixed in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.OutOrStdout(), args[0], opts)
		},
	}
}

func runWatch(w io.Writer, path string, opts *rootOptions) error {
	engine, renderer, err := newEvaluator(opts)
	if err != nil {
		return err
	}

	render := func() {
		rep, err := evaluateFile(path, engine)
		if err != nil {
			slog.Error("Evaluation failed", "file", path, "error", err)
			return
		}
		if err := renderer.Render(w, path, rep); err != nil {
			slog.Error("Render failed", "file", path, "error", err)
		}
	}

	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("Watching results file", "file", path, "debounce", debounceDelay)

	target := filepath.Clean(path)
	timer := time.NewTimer(debounceDelay)
	stopDebounce(timer)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			resetDebounce(timer, debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)

		case <-timer.C:
			render()
		}
	}
}

// stopDebounce halts the timer, discarding a tick that already fired
// but was not consumed. Reset on a timer with an unread tick delivers
// that stale tick immediately.
func stopDebounce(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}

// resetDebounce restarts the debounce window from now.
func resetDebounce(timer *time.Timer, d time.Duration) {
	stopDebounce(timer)
	timer.Reset(d)
}
