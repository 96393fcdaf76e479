package domain

import "strings"

// Request captures one create invocation. It lives for a single process
// run; nothing about it is persisted.
// Fields are ordered to minimize memory padding.
type Request struct {
	FileName  string // Base name of the file to create (required)
	TargetDir string // Directory the file goes into, absolute after validation
	Content   string // Initial content, empty permitted
	Editor    string // Resolved editor command
	Force     bool   // Skip the overwrite confirmation
	NoEdit    bool   // Skip the editor handoff entirely
}

// Validate checks the required fields. It is called after prompting, so a
// failure here is terminal.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.FileName) == "" {
		return ErrMissingFileName
	}
	if strings.TrimSpace(r.TargetDir) == "" {
		return ErrMissingTargetDir
	}
	return nil
}

// RepoRelative reports whether the target directory should be resolved
// against the enclosing git repository root, and returns the remainder.
// "@" means the root itself, "@/docs" a subdirectory of it.
func RepoRelative(dir string) (rest string, ok bool) {
	if dir == "@" {
		return "", true
	}
	if strings.HasPrefix(dir, "@/") {
		return dir[2:], true
	}
	return "", false
}
