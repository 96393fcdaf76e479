// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/codinganovel/texty/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockPrompter is a test double for domain.Prompter with scripted answers.
// Fields are ordered to minimize memory padding.
type MockPrompter struct {
	Answers   []string // Consumed one per Ask call
	Questions []string // Labels seen by Ask
	Confirms  []string // Questions seen by Confirm
	AskErr    error
	Accept    bool // Answer for Confirm
	askIndex  int
}

// Ask returns the next scripted answer.
func (m *MockPrompter) Ask(label string) (string, error) {
	m.Questions = append(m.Questions, label)
	if m.AskErr != nil {
		return "", m.AskErr
	}
	if m.askIndex >= len(m.Answers) {
		return "", nil
	}
	answer := m.Answers[m.askIndex]
	m.askIndex++
	return answer, nil
}

// Confirm records the question and returns the configured answer.
func (m *MockPrompter) Confirm(question string) (bool, error) {
	m.Confirms = append(m.Confirms, question)
	return m.Accept, nil
}

// MockLauncher is a test double for domain.Launcher.
type MockLauncher struct {
	Launched []domain.LaunchSpec
	// FailPrograms maps a program name to the error its launch returns.
	FailPrograms map[string]error
}

// Launch records the spec and fails if the program is marked failing.
func (m *MockLauncher) Launch(spec domain.LaunchSpec) error {
	m.Launched = append(m.Launched, spec)
	if err, ok := m.FailPrograms[spec.Program]; ok {
		return err
	}
	return nil
}

// MockFinder is a test double for domain.CommandFinder.
type MockFinder struct {
	// Available maps command name to resolved path.
	Available map[string]string
}

// Find resolves commands from the Available map.
func (m *MockFinder) Find(command string) (string, error) {
	if path, ok := m.Available[command]; ok {
		return path, nil
	}
	return "", fmt.Errorf("find %s: executable file not found", command)
}

// MockRepoRoot is a test double for domain.RepoRootFinder.
type MockRepoRoot struct {
	RootDir string
	Err     error
}

// Root returns the configured root or error.
func (m *MockRepoRoot) Root(_ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.RootDir == "" {
		return "", domain.ErrNotInRepository
	}
	return m.RootDir, nil
}

// MockTemplateStore is a test double for domain.TemplateStore.
type MockTemplateStore struct {
	// Rendered maps template name to rendered output.
	Rendered map[string]string
	Infos    []domain.TemplateInfo
	LastData domain.TemplateData
}

// Render returns the canned output for the template name.
func (m *MockTemplateStore) Render(name string, data domain.TemplateData) (string, error) {
	m.LastData = data
	out, ok := m.Rendered[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
	}
	return out, nil
}

// List returns the canned template infos.
func (m *MockTemplateStore) List() ([]domain.TemplateInfo, error) {
	return m.Infos, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	Dir       string
	Written   string
	WriteErr  error
	DidExists bool
}

// WriteStarter records the write.
func (m *MockConfigManager) WriteStarter() (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	if m.DidExists {
		return "", domain.ErrConfigExists
	}
	m.Written = m.Dir + "/config.toml"
	return m.Written, nil
}

// GlobalDir returns the configured directory.
func (m *MockConfigManager) GlobalDir() string {
	return m.Dir
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}
