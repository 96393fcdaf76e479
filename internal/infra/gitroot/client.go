// Package gitroot resolves the enclosing git repository root.
package gitroot

import (
	"fmt"
	"path/filepath"

	"github.com/codinganovel/texty/internal/domain"
	git "github.com/go-git/go-git/v5"
)

// Client implements domain.RepoRootFinder using go-git.
type Client struct{}

// NewClient creates a new repository root finder.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.RepoRootFinder interface.
var _ domain.RepoRootFinder = (*Client)(nil)

// Root walks up from dir to the repository root. Worktree-less (bare)
// repositories do not count; texty needs a working tree to place files in.
func (c *Client) Root(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNotInRepository, dir)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNotInRepository, dir)
	}
	root := wt.Filesystem.Root()
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve repository root: %w", err)
	}
	return abs, nil
}
