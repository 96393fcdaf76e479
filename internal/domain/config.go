package domain

// ConfigFileName is the repo-local config file name.
const ConfigFileName = ".texty.toml"

// GlobalConfigFileName is the file name inside the global config directory.
const GlobalConfigFileName = "config.toml"

// TemplatesFileName is the repo-local templates file name.
const TemplatesFileName = ".texty.yaml"

// GlobalTemplatesFileName is the templates file inside the global config
// directory.
const GlobalTemplatesFileName = "templates.yaml"

// Config represents the application configuration.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	Defaults DefaultsConfig `toml:"defaults"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// EditorConfig holds [editor] settings.
type EditorConfig struct {
	Command  string   `toml:"command"`  // Preferred editor command
	Args     []string `toml:"args"`     // Extra arguments placed before the file path
	Fallback string   `toml:"fallback"` // Overrides the per-OS universal fallback
}

// DefaultsConfig holds [defaults] settings applied before prompting.
type DefaultsConfig struct {
	Dir   string `toml:"dir"`   // Default target directory
	Force bool   `toml:"force"` // Suppress overwrite confirmation by default
}

// UIConfig holds [ui] settings.
type UIConfig struct {
	Prompt string `toml:"prompt"` // "plain" (stdin) or "tui"
	Color  *bool  `toml:"color"`  // nil = auto
}

// LogConfig holds [log] settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Log file path, empty disables logging
}

// PromptStyleTUI selects the full-screen prompt implementation.
const PromptStyleTUI = "tui"

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		UI:  UIConfig{Prompt: "plain"},
		Log: LogConfig{Level: "info"},
	}
}

// ColorEnabled reports whether styled output should be used.
func (c *Config) ColorEnabled() bool {
	if c.UI.Color == nil {
		return true
	}
	return *c.UI.Color
}
