package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
	"github.com/kilianc/blaze2jsx/internal/ctxlog"
	"github.com/kilianc/blaze2jsx/pkg/blaze2jsx"
)

const defaultExt = ".blaze.yaml"

type config struct {
	dir      string
	ext      string
	maxDepth int
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "blaze2jsx [flags] [paths...]",
		Short: "Generate JSX from Blaze document trees",
		Long: `Generates one <name>.jsx file next to each <name>` + defaultExt + ` source.

Paths behave like Go patterns:
  - ./...                 recurse from cwd
  - ./dir                 only that directory (non-recursive)
  - ./dir/...             recurse from that directory
  - ./page` + defaultExt + `     only that file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), newLogger(cfg.verbose)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cfg, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.ext, "ext", defaultExt, "input file suffix")
	flags.IntVar(&cfg.maxDepth, "max-depth", visitor.DefaultMaxDepth, "maximum nesting depth of an input tree")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&cfg.dir, "dir", "", "if set, only generate for this directory (non-recursive). Useful with go:generate.")

	root.AddCommand(newPrintCmd(cfg))
	return root
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (c *config) compiler() *blaze2jsx.Compiler {
	return blaze2jsx.New(blaze2jsx.Options{MaxDepth: c.maxDepth})
}

// outputPath maps "<name><ext>" to "<name>.jsx".
func (c *config) outputPath(in string) string {
	return strings.TrimSuffix(in, c.ext) + ".jsx"
}

func runGenerate(ctx context.Context, cfg *config, args []string) error {
	if strings.TrimSpace(cfg.ext) == "" {
		return fmt.Errorf("blaze2jsx: --ext must not be empty")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	dir := strings.TrimSpace(cfg.dir)
	if dir != "" && len(args) != 0 {
		return fmt.Errorf("blaze2jsx: cannot use --dir with positional paths")
	}

	g := &generator{cfg: cfg, compiler: cfg.compiler()}
	if dir != "" {
		return g.generateDir(ctx, absFrom(cwd, dir))
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	paths, err := g.collectPaths(ctx, cwd, patterns)
	if err != nil {
		return err
	}
	return g.generateFiles(ctx, paths)
}
