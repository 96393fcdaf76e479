package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultsWhenNoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.UI.Prompt)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Editor.Command)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoad_GlobalOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.GlobalConfigFileName), `
[editor]
command = "code"

[defaults]
dir = "~/notes"
`)
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "code", cfg.Editor.Command)
	assert.Equal(t, "~/notes", cfg.Defaults.Dir)
	assert.Equal(t, "plain", cfg.UI.Prompt, "defaults survive the merge")
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	workDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.GlobalConfigFileName), `
[editor]
command = "code"

[log]
level = "warn"
`)
	writeFile(t, filepath.Join(workDir, domain.ConfigFileName), `
[editor]
command = "vim"

[ui]
prompt = "tui"
color = false
`)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "vim", cfg.Editor.Command)
	assert.Equal(t, "warn", cfg.Log.Level, "global setting untouched by local file")
	assert.Equal(t, "tui", cfg.UI.Prompt)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoad_MalformedFileFails(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, domain.ConfigFileName), "editor = {{{")
	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())

	_, err := loader.Load()

	require.Error(t, err)
}

func TestWriteStarter(t *testing.T) {
	t.Run("writes a parseable starter", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "texty")
		loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

		path, err := loader.WriteStarter()

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(globalDir, domain.GlobalConfigFileName), path)

		// The commented starter must still load clean.
		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.UI.Prompt)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, domain.GlobalConfigFileName), "")
		loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

		_, err := loader.WriteStarter()

		require.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestDefaultGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "texty"), DefaultGlobalConfigDir())
}
