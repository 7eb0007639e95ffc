package outfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteGeneratedFile(t *testing.T) {
	ctx := context.Background()
	out := filepath.Join(t.TempDir(), "page.jsx")

	wrote, err := WriteGeneratedFile(ctx, out, []byte("<div />\n"))
	require.NoError(t, err)
	require.True(t, wrote)

	wrote, err = WriteGeneratedFile(ctx, out, []byte("<div />\n"))
	require.NoError(t, err)
	require.False(t, wrote, "identical content must not be rewritten")

	wrote, err = WriteGeneratedFile(ctx, out, []byte("<span />\n"))
	require.NoError(t, err)
	require.True(t, wrote)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "<span />\n", string(got))
}

func TestWriteGeneratedFileMissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "page.jsx")
	_, err := WriteGeneratedFile(context.Background(), out, []byte("x"))
	require.Error(t, err)
}
