package domain

import "time"

// Prompter reads missing parameters interactively.
type Prompter interface {
	// Ask prints the label and returns the entered line with surrounding
	// whitespace trimmed. An empty answer is returned as "".
	Ask(label string) (string, error)

	// Confirm asks a y/N question. Only an affirmative answer returns true.
	Confirm(question string) (bool, error)
}

// LaunchSpec describes an external program invocation.
type LaunchSpec struct {
	Program string   // Command name or path
	Args    []string // Arguments, file path included
	Dir     string   // Working directory (empty = inherit)
}

// Launcher starts external programs. The handoff is fire-and-forget:
// Launch returns once the process has started, it does not wait for exit.
type Launcher interface {
	Launch(spec LaunchSpec) error
}

// CommandFinder probes PATH for a command.
type CommandFinder interface {
	// Find returns the resolved path of the command, or an error if the
	// command is not present on PATH.
	Find(command string) (string, error)
}

// RepoRootFinder resolves the enclosing git repository root of a directory.
type RepoRootFinder interface {
	// Root returns the repository root containing dir.
	// Returns ErrNotInRepository when dir is outside any repository.
	Root(dir string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo-local over global).
	Load() (*Config, error)
}

// ConfigManager writes configuration files.
type ConfigManager interface {
	// WriteStarter writes a commented starter config to the global config
	// directory and returns its path. Fails with ErrConfigExists if the
	// file is already there.
	WriteStarter() (string, error)

	// GlobalDir returns the global config directory.
	GlobalDir() string
}

// TemplateStore provides named initial-content templates.
type TemplateStore interface {
	// Render renders the named template with the given data.
	// Returns ErrTemplateNotFound if the name is unknown.
	Render(name string, data TemplateData) (string, error)

	// List returns available template names with their source file.
	List() ([]TemplateInfo, error)
}

// TemplateData is the context available to content templates.
type TemplateData struct {
	Name string    // File name
	Path string    // Full target path
	Dir  string    // Target directory
	Now  time.Time // Invocation time
}

// TemplateInfo describes one available template.
type TemplateInfo struct {
	Name   string
	Source string // Path of the file that defines it
}

// Logger records diagnostic events by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
