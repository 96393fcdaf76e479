package launcher

import (
	"runtime"
	"testing"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix coreutils")
	}

	t.Run("starts a real process", func(t *testing.T) {
		err := NewClient().Launch(domain.LaunchSpec{Program: "true"})
		assert.NoError(t, err)
	})

	t.Run("missing program fails", func(t *testing.T) {
		err := NewClient().Launch(domain.LaunchSpec{Program: "texty-no-such-editor"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "texty-no-such-editor")
	})

	t.Run("working directory is honored", func(t *testing.T) {
		dir := t.TempDir()
		err := NewClient().Launch(domain.LaunchSpec{Program: "true", Dir: dir})
		assert.NoError(t, err)
	})
}

func TestFinder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix coreutils")
	}

	t.Run("finds a command on PATH", func(t *testing.T) {
		path, err := NewFinder().Find("sh")
		require.NoError(t, err)
		assert.NotEmpty(t, path)
	})

	t.Run("missing command", func(t *testing.T) {
		_, err := NewFinder().Find("texty-no-such-editor")
		require.Error(t, err)
	})
}
