package gitroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codinganovel/texty/internal/domain"
	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		root := t.TempDir()
		_, err := git.PlainInit(root, false)
		require.NoError(t, err)

		sub := filepath.Join(root, "docs", "deep")
		require.NoError(t, os.MkdirAll(sub, 0o750))

		got, err := NewClient().Root(sub)

		require.NoError(t, err)
		// TempDir may sit behind a symlink (macOS); compare resolved paths.
		wantResolved, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		gotResolved, err := filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, wantResolved, gotResolved)
	})

	t.Run("outside a repository", func(t *testing.T) {
		_, err := NewClient().Root(t.TempDir())
		require.ErrorIs(t, err, domain.ErrNotInRepository)
	})

	t.Run("bare repository has no working tree", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, true)
		require.NoError(t, err)

		_, err = NewClient().Root(dir)
		require.ErrorIs(t, err, domain.ErrNotInRepository)
	})
}
