package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorOpenArgs(t *testing.T) {
	t.Run("goto-capable editor jumps to line 1", func(t *testing.T) {
		args := VSCode.OpenArgs("/tmp/notes.md")
		assert.Equal(t, []string{"--reuse-window", "--goto", "/tmp/notes.md:1"}, args)
	})

	t.Run("plain editor gets the path as sole argument", func(t *testing.T) {
		vim, ok := LookupEditor("vim")
		require.True(t, ok)
		assert.Equal(t, []string{"/tmp/notes.md"}, vim.OpenArgs("/tmp/notes.md"))
	})
}

func TestLookupEditor(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantName string
		wantOK   bool
	}{
		{name: "bare command", command: "code", wantName: "Visual Studio Code", wantOK: true},
		{name: "absolute path", command: "/usr/local/bin/code", wantName: "Visual Studio Code", wantOK: true},
		{name: "windows executable", command: "code.exe", wantName: "Visual Studio Code", wantOK: true},
		{name: "nvim", command: "nvim", wantName: "Neovim", wantOK: true},
		{name: "unknown", command: "ed", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := LookupEditor(tt.command)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, e.Name)
			}
		})
	}
}

func TestFallbackEditorFor(t *testing.T) {
	assert.Equal(t, "notepad", fallbackEditorFor("windows"))
	assert.Equal(t, "vi", fallbackEditorFor("linux"))
	assert.Equal(t, "vi", fallbackEditorFor("darwin"))
}
