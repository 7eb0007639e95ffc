package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/outfile"
	"github.com/kilianc/blaze2jsx/internal/ctxlog"
	"github.com/kilianc/blaze2jsx/pkg/blaze2jsx"
)

type generator struct {
	cfg      *config
	compiler *blaze2jsx.Compiler
}

func absFrom(cwd, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	return filepath.Clean(p)
}

func skipDir(name string) bool {
	return name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".")
}

func (g *generator) isSource(name string) bool {
	return strings.HasSuffix(name, g.cfg.ext) && len(name) > len(g.cfg.ext)
}

// generateFiles compiles every path, reporting all failures together.
func (g *generator) generateFiles(ctx context.Context, paths []string) error {
	sort.Strings(paths)
	var allErr error
	for _, pth := range paths {
		if err := g.generateFile(ctx, pth); err != nil {
			ctxlog.FromContext(ctx).Error("generate failed", "path", pth, "error", err)
			allErr = errors.Join(allErr, err)
		}
	}
	return allErr
}

func (g *generator) generateDir(ctx context.Context, dir string) error {
	paths, err := g.listDir(dir)
	if err != nil {
		return err
	}
	return g.generateFiles(ctx, paths)
}

func (g *generator) generateFile(ctx context.Context, pth string) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	src, err := g.compiler.CompileFile(pth, b)
	if err != nil {
		return err
	}
	outPath := g.cfg.outputPath(pth)
	wrote, err := outfile.WriteGeneratedFile(ctx, outPath, src)
	if err != nil {
		return err
	}
	if wrote {
		ctxlog.FromContext(ctx).Info("generated", "path", outPath)
	}
	return nil
}

func (g *generator) listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && g.isSource(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

func (g *generator) collectPaths(ctx context.Context, cwd string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		abs := absFrom(cwd, p)
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		// Recursive pattern: <dir>/...
		if pat == "..." || strings.HasSuffix(pat, "/...") {
			base := strings.TrimSuffix(strings.TrimSuffix(pat, "..."), "/")
			if base == "" {
				base = "."
			}
			if err := g.walk(ctx, absFrom(cwd, base), add); err != nil {
				return nil, err
			}
			continue
		}

		// Non-recursive: a source file or a directory.
		target := absFrom(cwd, pat)
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			paths, err := g.listDir(target)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				add(p)
			}
			continue
		}
		if !g.isSource(filepath.Base(target)) {
			return nil, fmt.Errorf("blaze2jsx: not a %s file: %s", g.cfg.ext, target)
		}
		add(target)
	}
	return out, nil
}

func (g *generator) walk(ctx context.Context, root string, add func(string)) error {
	logger := ctxlog.FromContext(ctx)
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path != root && skipDir(de.Name()) {
				logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if g.isSource(de.Name()) {
			add(path)
		}
		return nil
	})
}
