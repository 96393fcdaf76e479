package domain

import "errors"

// Domain errors.
var (
	ErrMissingFileName  = errors.New("file name is required")
	ErrMissingTargetDir = errors.New("target directory is required")
	ErrInvalidPath      = errors.New("invalid target directory")
	ErrDirectoryCreate  = errors.New("cannot create target directory")
	ErrWriteFailed      = errors.New("cannot write file")
	ErrEditorLaunch     = errors.New("cannot launch editor")
	ErrConfigExists     = errors.New("config file already exists")
	ErrTemplateNotFound = errors.New("template not found")
	ErrContentConflict  = errors.New("--content and --template cannot be combined")
	ErrNotInRepository  = errors.New("not inside a git repository")
)

// Exit codes form the CLI contract. Scripts key off these values,
// so they never change meaning.
const (
	ExitOK              = 0
	ExitUsage           = 1
	ExitMissingFileName = 10
	ExitMissingDir      = 11
	ExitInvalidPath     = 12
	ExitDirCreate       = 13
	ExitWriteFailed     = 20
	ExitEditorLaunch    = 30
)

// ExitCode maps an error chain to its process exit code.
// Unmapped errors (usage mistakes, config parse failures) exit 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch {
	case errors.Is(err, ErrMissingFileName):
		return ExitMissingFileName
	case errors.Is(err, ErrMissingTargetDir):
		return ExitMissingDir
	case errors.Is(err, ErrInvalidPath):
		return ExitInvalidPath
	case errors.Is(err, ErrDirectoryCreate):
		return ExitDirCreate
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	case errors.Is(err, ErrEditorLaunch):
		return ExitEditorLaunch
	}
	return ExitUsage
}
