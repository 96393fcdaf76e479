// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"os"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/codinganovel/texty/internal/infra/config"
	"github.com/codinganovel/texty/internal/infra/gitroot"
	"github.com/codinganovel/texty/internal/infra/launcher"
	"github.com/codinganovel/texty/internal/infra/logging"
	"github.com/codinganovel/texty/internal/infra/prompt"
	"github.com/codinganovel/texty/internal/infra/templates"
	"github.com/codinganovel/texty/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Prompter      domain.Prompter
	Launcher      domain.Launcher
	Finder        domain.CommandFinder
	RepoRoot      domain.RepoRootFinder
	Templates     domain.TemplateStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Configuration loaded at startup
	Config *domain.Config

	// Stderr receives warnings from use cases
	Stderr io.Writer

	closer func() error
}

// New creates a new Container for the given working directory.
func New(workDir string) (*Container, error) {
	loader := config.NewLoader(workDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}
	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level), clock)

	// Prompts go to stderr so stdout stays reserved for the result line.
	var prompter domain.Prompter
	if cfg.UI.Prompt == domain.PromptStyleTUI {
		prompter = prompt.NewTUI(os.Stdin, os.Stderr)
	} else {
		prompter = prompt.NewStdin(os.Stdin, os.Stderr)
	}

	return &Container{
		Prompter:      prompter,
		Launcher:      launcher.NewClient(),
		Finder:        launcher.NewFinder(),
		RepoRoot:      gitroot.NewClient(),
		Templates:     templates.NewStore(workDir, loader.GlobalDir()),
		ConfigLoader:  loader,
		ConfigManager: loader,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
		Stderr:        os.Stderr,
		closer:        logger.Close,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg *domain.Config,
	prompter domain.Prompter,
	launch domain.Launcher,
	finder domain.CommandFinder,
	repoRoot domain.RepoRootFinder,
	tmpl domain.TemplateStore,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	clock domain.Clock,
	logger domain.Logger,
	stderr io.Writer,
) *Container {
	return &Container{
		Prompter:      prompter,
		Launcher:      launch,
		Finder:        finder,
		RepoRoot:      repoRoot,
		Templates:     tmpl,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
		Stderr:        stderr,
	}
}

// Close releases container resources (the log file).
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// CreateFileUseCase returns a new CreateFile use case.
func (c *Container) CreateFileUseCase() *usecase.CreateFile {
	return usecase.NewCreateFile(
		c.Prompter,
		c.Launcher,
		c.RepoRoot,
		c.Templates,
		c.ResolveEditorUseCase(),
		c.Clock,
		c.Logger,
		c.Stderr,
	)
}

// ResolveEditorUseCase returns a new ResolveEditor use case.
func (c *Container) ResolveEditorUseCase() *usecase.ResolveEditor {
	return usecase.NewResolveEditor(c.ConfigLoader, c.Finder)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ListEditorsUseCase returns a new ListEditors use case.
func (c *Container) ListEditorsUseCase() *usecase.ListEditors {
	return usecase.NewListEditors(c.Finder, c.ResolveEditorUseCase())
}

// ListTemplatesUseCase returns a new ListTemplates use case.
func (c *Container) ListTemplatesUseCase() *usecase.ListTemplates {
	return usecase.NewListTemplates(c.Templates)
}
