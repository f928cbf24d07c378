//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/rawtext/rawio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// countingOps swaps in wrappers that record which system calls Open makes.
func countingOps(t *testing.T) map[string]int {
	t.Helper()
	calls := map[string]int{}
	orig := sys
	sys = sysOps{
		open: func(path string, flags int) (int, error) {
			calls["open"]++
			return orig.open(path, flags)
		},
		stat: func(fd int) (int64, error) {
			calls["stat"]++
			return orig.stat(fd)
		},
		mmap: func(fd int, size int) ([]byte, error) {
			calls["mmap"]++
			return orig.mmap(fd, size)
		},
		close: func(fd int) error {
			calls["close"]++
			return orig.close(fd)
		},
	}
	t.Cleanup(func() { sys = orig })
	return calls
}

func TestMapping_OpenContentClose(t *testing.T) {
	path := writeFile(t, "Hello, Mmap!\n")
	calls := countingOps(t)

	m, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"open": 1, "stat": 1, "mmap": 1, "close": 1}, calls)
	assert.Equal(t, 13, m.Size())
	assert.Equal(t, "Hello, Mmap!\n", m.Content().String())
	require.NoError(t, m.Advise(AccessSequential))

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.True(t, m.Content().IsEmpty())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}

func TestMapping_EmptyFile(t *testing.T) {
	path := writeFile(t, "")
	calls := countingOps(t)

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Zero(t, calls["mmap"])
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.Content().IsEmpty())
	assert.NoError(t, m.Advise(AccessSequential))
}

func TestMapping_MissingFileStopsAtOpen(t *testing.T) {
	calls := countingOps(t)

	m, err := Open(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Nil(t, m)
	assert.ErrorIs(t, err, rawio.ErrNotExist)
	assert.Equal(t, map[string]int{"open": 1}, calls)
}

func TestMapping_AllAccessPatterns(t *testing.T) {
	m, err := Open(writeFile(t, "data"))
	require.NoError(t, err)
	defer m.Close()

	for _, p := range []AccessPattern{AccessDefault, AccessSequential, AccessRandom, AccessWillNeed, AccessDontNeed} {
		assert.NoError(t, m.Advise(p))
	}
}
