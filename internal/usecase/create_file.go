// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/codinganovel/texty/internal/domain"
	"github.com/codinganovel/texty/internal/infra/fs"
)

// CreateFileInput contains the parameters for creating a file.
// Fields are ordered to minimize memory padding.
type CreateFileInput struct {
	FileName   string // File name (prompted if empty)
	TargetDir  string // Target directory (config default, then prompted)
	Content    string // Initial content
	Template   string // Named content template (mutually exclusive with Content)
	Editor     string // Explicit editor command (optional)
	ContentSet bool   // Whether Content was given, distinguishing unset from blank
	Force      bool   // Skip the overwrite confirmation
	NoEdit     bool   // Skip the editor handoff
}

// CreateFileOutput contains the result of creating a file.
// Fields are ordered to minimize memory padding.
type CreateFileOutput struct {
	Path         string // Full path of the created file
	Editor       string // Editor the file was handed to (empty with NoEdit)
	Aborted      bool   // User declined the overwrite prompt
	UsedFallback bool   // The fallback editor was launched
}

// CreateFile is the use case for the whole create flow: input resolution,
// path validation, overwrite guard, file write, editor handoff.
type CreateFile struct {
	prompter  domain.Prompter
	launcher  domain.Launcher
	repoRoot  domain.RepoRootFinder
	templates domain.TemplateStore
	resolver  *ResolveEditor
	clock     domain.Clock
	logger    domain.Logger
	stderr    io.Writer
}

// NewCreateFile creates a new CreateFile use case.
func NewCreateFile(
	prompter domain.Prompter,
	launcher domain.Launcher,
	repoRoot domain.RepoRootFinder,
	templates domain.TemplateStore,
	resolver *ResolveEditor,
	clock domain.Clock,
	logger domain.Logger,
	stderr io.Writer,
) *CreateFile {
	return &CreateFile{
		prompter:  prompter,
		launcher:  launcher,
		repoRoot:  repoRoot,
		templates: templates,
		resolver:  resolver,
		clock:     clock,
		logger:    logger,
		stderr:    stderr,
	}
}

// Execute runs the create flow for the given input.
func (uc *CreateFile) Execute(ctx context.Context, in CreateFileInput) (*CreateFileOutput, error) {
	if in.Template != "" && in.ContentSet {
		return nil, domain.ErrContentConflict
	}

	req, err := uc.resolveRequest(in)
	if err != nil {
		return nil, err
	}

	fullPath, err := uc.validatePath(req)
	if err != nil {
		return nil, err
	}

	if !req.Force && fs.Exists(fullPath) {
		ok, err := uc.prompter.Confirm(fmt.Sprintf("Warning: %s already exists. Overwrite?", fullPath))
		if err != nil {
			return nil, fmt.Errorf("confirm overwrite: %w", err)
		}
		if !ok {
			uc.logger.Info("write", fmt.Sprintf("overwrite declined: %s", fullPath))
			return &CreateFileOutput{Path: fullPath, Aborted: true}, nil
		}
	}

	content := req.Content
	if in.Template != "" {
		content, err = uc.templates.Render(in.Template, domain.TemplateData{
			Name: req.FileName,
			Path: fullPath,
			Dir:  req.TargetDir,
			Now:  uc.clock.Now(),
		})
		if err != nil {
			return nil, err
		}
	}

	if err := fs.WriteAtomic(fullPath, []byte(content)); err != nil {
		uc.logger.Error("write", err.Error())
		return nil, err
	}
	uc.logger.Info("write", fmt.Sprintf("created %s (%d bytes)", fullPath, len(content)))

	out := &CreateFileOutput{Path: fullPath}
	if req.NoEdit {
		return out, nil
	}

	editor, err := uc.resolver.Execute(ctx, ResolveEditorInput{Explicit: in.Editor})
	if err != nil {
		return nil, err
	}
	out.Editor = editor.Command
	out.UsedFallback, err = uc.handOff(editor, fullPath)
	if err != nil {
		return nil, err
	}
	if out.UsedFallback {
		out.Editor = editor.Fallback
	}
	return out, nil
}

// resolveRequest fills missing parameters from prompts and validates.
func (uc *CreateFile) resolveRequest(in CreateFileInput) (*domain.Request, error) {
	req := &domain.Request{
		FileName:  in.FileName,
		TargetDir: in.TargetDir,
		Content:   in.Content,
		Editor:    in.Editor,
		Force:     in.Force,
		NoEdit:    in.NoEdit,
	}

	var err error
	if req.FileName == "" {
		if req.FileName, err = uc.prompter.Ask("File name"); err != nil {
			return nil, fmt.Errorf("prompt file name: %w", err)
		}
	}
	if req.TargetDir == "" {
		if req.TargetDir, err = uc.prompter.Ask("Target directory"); err != nil {
			return nil, fmt.Errorf("prompt target directory: %w", err)
		}
	}
	if !in.ContentSet && in.Template == "" {
		if req.Content, err = uc.prompter.Ask("Initial content (blank for empty)"); err != nil {
			return nil, fmt.Errorf("prompt content: %w", err)
		}
	}

	// No re-prompt loop: a still-blank answer is terminal.
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// validatePath normalizes the target directory, creates it if missing,
// and composes the full file path. It mutates req.TargetDir to the
// absolute form.
func (uc *CreateFile) validatePath(req *domain.Request) (string, error) {
	dir := req.TargetDir
	if rest, ok := domain.RepoRelative(dir); ok {
		root, err := uc.repoRoot.Root(".")
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidPath, err)
		}
		dir = filepath.Join(root, rest)
	}

	abs, err := fs.NormalizeDir(dir)
	if err != nil {
		uc.logger.Error("path", err.Error())
		return "", err
	}
	if err := fs.EnsureDir(abs); err != nil {
		uc.logger.Error("path", err.Error())
		return "", err
	}

	req.TargetDir = abs
	return filepath.Join(abs, req.FileName), nil
}

// handOff launches the editor on the file, falling back once.
func (uc *CreateFile) handOff(editor *ResolveEditorOutput, path string) (usedFallback bool, err error) {
	spec := domain.LaunchSpec{Program: editor.Command, Args: editor.OpenArgs(path)}
	uc.logger.Info("launch", fmt.Sprintf("%s %v", spec.Program, spec.Args))
	firstErr := uc.launcher.Launch(spec)
	if firstErr == nil {
		return false, nil
	}

	_, _ = fmt.Fprintf(uc.stderr, "Warning: could not launch %s (%v), trying %s\n",
		editor.Command, firstErr, editor.Fallback)
	uc.logger.Warn("launch", fmt.Sprintf("%s failed: %v", editor.Command, firstErr))

	fallbackSpec := domain.LaunchSpec{Program: editor.Fallback, Args: []string{path}}
	if err := uc.launcher.Launch(fallbackSpec); err != nil {
		uc.logger.Error("launch", fmt.Sprintf("fallback %s failed: %v", editor.Fallback, err))
		return true, fmt.Errorf("%w: %v", domain.ErrEditorLaunch, err)
	}
	return true, nil
}
