package outfile

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/kilianc/blaze2jsx/internal/ctxlog"
)

// WriteGeneratedFile writes src to outPath unless the file already holds
// exactly src. It reports whether the file was written.
func WriteGeneratedFile(ctx context.Context, outPath string, src []byte) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	old, err := os.ReadFile(outPath)
	switch {
	case err == nil && bytes.Equal(old, src):
		logger.Debug("output unchanged", "path", outPath)
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return false, err
	}
	logger.Debug("output written", "path", outPath, "bytes", len(src))
	return true, nil
}
