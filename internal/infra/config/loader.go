// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for the repo-local file
	globalConfDir string // Global config directory (e.g. ~/.config/texty)
}

// NewLoader creates a new Loader searching workDir for the local file.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "texty")
}

// GlobalDir returns the configured global config directory.
func (l *Loader) GlobalDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration. Local config takes precedence
// over global config; both sit on top of the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	localPath := filepath.Join(l.workDir, domain.ConfigFileName)
	local, err := l.loadFile(localPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

func (l *Loader) loadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.GlobalConfigFileName))
}

func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Config path is derived from known directories
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays over onto base. Set fields in over win.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base

	if over.Editor.Command != "" {
		merged.Editor.Command = over.Editor.Command
		merged.Editor.Args = over.Editor.Args
	}
	if over.Editor.Fallback != "" {
		merged.Editor.Fallback = over.Editor.Fallback
	}
	if over.Defaults.Dir != "" {
		merged.Defaults.Dir = over.Defaults.Dir
	}
	if over.Defaults.Force {
		merged.Defaults.Force = true
	}
	if over.UI.Prompt != "" {
		merged.UI.Prompt = over.UI.Prompt
	}
	if over.UI.Color != nil {
		merged.UI.Color = over.UI.Color
	}
	if over.Log.Level != "" {
		merged.Log.Level = over.Log.Level
	}
	if over.Log.File != "" {
		merged.Log.File = over.Log.File
	}
	return &merged
}

// StarterConfig is written by `texty config --init`.
const StarterConfig = `# texty configuration
#
# Local overrides live in a .texty.toml next to where you run texty.

[editor]
# command = "code"
# args = []
# fallback = "vi"

[defaults]
# dir = "~/notes"
# force = false

[ui]
# prompt = "plain"  # or "tui"
# color = true

[log]
# level = "info"
# file = ""
`

// WriteStarter writes the starter config to the global config directory.
// It refuses to overwrite an existing file.
func (l *Loader) WriteStarter() (string, error) {
	if l.globalConfDir == "" {
		return "", errors.New("no global config directory available")
	}
	path := filepath.Join(l.globalConfDir, domain.GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	if err := os.MkdirAll(l.globalConfDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(StarterConfig), 0o644); err != nil { //nolint:gosec // Config is not secret
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
