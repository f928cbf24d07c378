//go:build unix

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("a\nb\n"), 0o600))

	src := NewFile(dir)

	r, err := src.Open(context.Background(), "in.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", r.Content().String())
	require.NoError(t, r.Close())
	assert.Nil(t, r.Bytes())

	_, err = src.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_AbsoluteNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abs.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	r, err := NewFile("").Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "x", r.Content().String())
}
