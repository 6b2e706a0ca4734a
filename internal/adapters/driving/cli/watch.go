package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/osmswap/internal/logger"
)

const (
	// watchDebounce coalesces the burst of events an editor save produces.
	watchDebounce = 500 * time.Millisecond

	// watchMinInterval spaces re-runs when inputs change continuously.
	watchMinInterval = 2 * time.Second
)

var watchCmd = &cobra.Command{
	Use:   "watch <workflow> <actual-model> <reference-model> [weather]",
	Short: "Re-run the swap whenever an input file changes",
	Long: `Runs the swap once, then again each time one of the input files is
written or replaced. Errors are reported and watching continues.
Stop with Ctrl+C.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runWatch,
}

func init() {
	addSwapFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if swapService == nil {
		return errors.New("swap service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	swapOnce := func() {
		req, err := swapRequest(args)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		result, err := swapService.Run(ctx, req)
		if err != nil {
			cmd.PrintErrf("Error: swap failed: %v\n", err)
			return
		}
		printResult(cmd, result)
	}

	swapOnce()
	cmd.Println("Watching for changes, press Ctrl+C to stop")
	limiter := rate.NewLimiter(rate.Every(watchMinInterval), 1)
	return watchFiles(ctx, args, watchDebounce, func() {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		swapOnce()
	})
}

// watchFiles calls fn after any of paths is written, created or renamed
// over, once the events have been quiet for debounce. It returns when ctx
// is done.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Watch directories so atomic replace-on-save is seen.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isInputEvent(ev, targets) {
				logger.Debug("input changed: %s (%s)", ev.Name, ev.Op)
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-timer.C:
			fn()
		}
	}
}

// isInputEvent reports whether ev changes the content of a watched file.
func isInputEvent(ev fsnotify.Event, targets map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return targets[abs]
}
