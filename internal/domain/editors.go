package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Editor describes one known editor and how to open a file with it.
// Fields are ordered to minimize memory padding.
type Editor struct {
	Name    string   // Display name
	Command string   // Command probed on PATH
	Args    []string // Extra arguments placed before the file path
	// GotoLine indicates the editor accepts a "path:line" location,
	// letting texty jump to line 1 of the new file.
	GotoLine bool
}

// OpenArgs returns the argument list for opening path with the editor.
func (e Editor) OpenArgs(path string) []string {
	args := make([]string, 0, len(e.Args)+2)
	args = append(args, e.Args...)
	if e.GotoLine {
		return append(args, path+":1")
	}
	return append(args, path)
}

// VSCode is the known goto-capable editor. When it is the resolved editor,
// texty reuses an existing window and jumps to line 1.
var VSCode = Editor{
	Name:     "Visual Studio Code",
	Command:  "code",
	Args:     []string{"--reuse-window", "--goto"},
	GotoLine: true,
}

// KnownEditors is the detection order for the PATH probe.
var KnownEditors = []Editor{
	VSCode,
	{Name: "Vim", Command: "vim"},
	{Name: "Neovim", Command: "nvim"},
	{Name: "Nano", Command: "nano"},
	{Name: "Helix", Command: "hx"},
}

// FallbackEditor returns the universal fallback editor command for the
// current platform.
func FallbackEditor() string {
	return fallbackEditorFor(runtime.GOOS)
}

func fallbackEditorFor(goos string) string {
	if goos == "windows" {
		return "notepad"
	}
	return "vi"
}

// LookupEditor returns the known editor matching command, if any.
// The match is by bare command name so an absolute path still counts.
func LookupEditor(command string) (Editor, bool) {
	base := strings.TrimSuffix(filepath.Base(command), ".exe")
	for _, e := range KnownEditors {
		if e.Command == base {
			return e, true
		}
	}
	return Editor{}, false
}
