package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDir(t *testing.T) {
	t.Run("relative becomes absolute", func(t *testing.T) {
		abs, err := NormalizeDir("some/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})

	t.Run("cleans redundant segments", func(t *testing.T) {
		abs, err := NormalizeDir("/tmp/a/../b//c")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/tmp/b/c"), abs)
	})

	t.Run("expands home prefix", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		abs, err := NormalizeDir("~/notes")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "notes"), abs)
	})

	t.Run("bare tilde is home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		abs, err := NormalizeDir("~")
		require.NoError(t, err)
		assert.Equal(t, home, abs)
	})
}

func TestEnsureDir(t *testing.T) {
	t.Run("creates missing tree", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "x", "y", "z")
		require.NoError(t, EnsureDir(dir))
		assert.DirExists(t, dir)
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, EnsureDir(dir))
	})

	t.Run("existing file is a path error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		err := EnsureDir(path)
		require.ErrorIs(t, err, domain.ErrInvalidPath)
	})

	t.Run("blocked creation is a create error", func(t *testing.T) {
		base := t.TempDir()
		blocker := filepath.Join(base, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := EnsureDir(filepath.Join(blocker, "child"))
		require.ErrorIs(t, err, domain.ErrDirectoryCreate)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Run("content goes out verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, WriteAtomic(path, []byte("line one\nline two")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", string(content))
		// No byte-order mark, no appended newline.
		assert.NotEqual(t, byte(0xEF), content[0])
		assert.NotEqual(t, byte('\n'), content[len(content)-1])
	})

	t.Run("empty content makes a zero-length file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, WriteAtomic(path, nil))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("replaces prior content entirely", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "note.txt")
		require.NoError(t, WriteAtomic(path, []byte("a much longer original body")))
		require.NoError(t, WriteAtomic(path, []byte("short")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(content))
	})

	t.Run("no temp file left behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, WriteAtomic(path, []byte("x")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.txt", entries[0].Name())
	})

	t.Run("missing directory is a write error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "out.txt")
		err := WriteAtomic(path, []byte("x"))
		require.ErrorIs(t, err, domain.ErrWriteFailed)
	})
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, Exists(path))
}
