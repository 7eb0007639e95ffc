package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/outfile"
	"github.com/kilianc/blaze2jsx/internal/ctxlog"
	"github.com/kilianc/blaze2jsx/pkg/blaze2jsx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:           "playground [flags]",
		Short:         "Regenerate ./playground/page.jsx whenever page.blaze.yaml changes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx = ctxlog.WithLogger(ctx, logger)

			root, err := findModuleRoot(".")
			if err != nil {
				return err
			}
			return watchAndGenerate(ctx, filepath.Join(root, "playground", "page.blaze.yaml"), interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "debounce interval between a change and regeneration")
	return cmd
}

// watchAndGenerate compiles target once, then again after each burst of
// writes settles for interval. It returns when ctx is done.
func watchAndGenerate(ctx context.Context, target string, interval time.Duration) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	regenerate(ctx, target)

	timer := time.NewTimer(interval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create {
				timer.Reset(interval)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		case <-timer.C:
			regenerate(ctx, target)
		}
	}
}

// regenerate writes the JSX for target next to it. Failures are logged so
// the loop keeps running while the source is being edited.
func regenerate(ctx context.Context, target string) {
	logger := ctxlog.FromContext(ctx)
	out, err := generate(ctx, target)
	if err != nil {
		logger.Error("generate failed", "path", target, "error", err)
		return
	}
	logger.Info("generated", "path", out)
}

func generate(ctx context.Context, target string) (string, error) {
	src, err := os.ReadFile(target)
	if err != nil {
		return "", err
	}
	jsxSrc, err := blaze2jsx.CompileFile(target, src)
	if err != nil {
		return "", err
	}
	out := filepath.Join(filepath.Dir(target), "page.jsx")
	if _, err := outfile.WriteGeneratedFile(ctx, out, jsxSrc); err != nil {
		return "", err
	}
	return out, nil
}

func findModuleRoot(start string) (string, error) {
	d, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("could not find go.mod above %s", start)
		}
		d = parent
	}
}
