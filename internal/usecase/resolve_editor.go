package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/codinganovel/texty/internal/domain"
)

// Editor resolution sources, in precedence order.
const (
	EditorSourceFlag     = "flag"
	EditorSourceConfig   = "config"
	EditorSourceEnv      = "environment"
	EditorSourceProbe    = "probe"
	EditorSourceFallback = "fallback"
)

// ResolveEditorInput contains the parameters for resolving the editor.
type ResolveEditorInput struct {
	Explicit string // Editor from the command line (optional)
}

// ResolveEditorOutput contains the resolved editor.
// Fields are ordered to minimize memory padding.
type ResolveEditorOutput struct {
	Command  string   // Resolved editor command
	Fallback string   // Universal fallback to try on launch failure
	Args     []string // Extra arguments from config (custom commands only)
	Source   string   // Where the command came from
}

// OpenArgs returns the argument list for opening path with the resolved
// editor. Known goto-capable editors jump to line 1 of the file.
func (o *ResolveEditorOutput) OpenArgs(path string) []string {
	if e, ok := domain.LookupEditor(o.Command); ok {
		return e.OpenArgs(path)
	}
	args := make([]string, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	return append(args, path)
}

// ResolveEditor is the use case for default editor detection. It is an
// explicit function of its inputs, never process-global state, so tests
// can pin every step of the chain.
type ResolveEditor struct {
	config domain.ConfigLoader
	finder domain.CommandFinder
	getenv func(string) string
}

// NewResolveEditor creates a new ResolveEditor use case.
func NewResolveEditor(config domain.ConfigLoader, finder domain.CommandFinder) *ResolveEditor {
	return &ResolveEditor{
		config: config,
		finder: finder,
		getenv: os.Getenv,
	}
}

// WithEnv overrides environment lookup. This is useful for testing.
func (uc *ResolveEditor) WithEnv(getenv func(string) string) *ResolveEditor {
	uc.getenv = getenv
	return uc
}

// Execute resolves the editor: explicit flag, config, $EDITOR, $VISUAL,
// PATH probe over the known editors, then the per-OS fallback.
func (uc *ResolveEditor) Execute(_ context.Context, in ResolveEditorInput) (*ResolveEditorOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fallback := cfg.Editor.Fallback
	if fallback == "" {
		fallback = domain.FallbackEditor()
	}

	if in.Explicit != "" {
		return &ResolveEditorOutput{Command: in.Explicit, Fallback: fallback, Source: EditorSourceFlag}, nil
	}
	if cfg.Editor.Command != "" {
		return &ResolveEditorOutput{
			Command:  cfg.Editor.Command,
			Args:     cfg.Editor.Args,
			Fallback: fallback,
			Source:   EditorSourceConfig,
		}, nil
	}
	if editor := uc.getenv("EDITOR"); editor != "" {
		return &ResolveEditorOutput{Command: editor, Fallback: fallback, Source: EditorSourceEnv}, nil
	}
	if editor := uc.getenv("VISUAL"); editor != "" {
		return &ResolveEditorOutput{Command: editor, Fallback: fallback, Source: EditorSourceEnv}, nil
	}
	for _, known := range domain.KnownEditors {
		if _, err := uc.finder.Find(known.Command); err == nil {
			return &ResolveEditorOutput{Command: known.Command, Fallback: fallback, Source: EditorSourceProbe}, nil
		}
	}
	return &ResolveEditorOutput{Command: fallback, Fallback: fallback, Source: EditorSourceFallback}, nil
}
