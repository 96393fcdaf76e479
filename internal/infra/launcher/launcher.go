// Package launcher provides external process launching.
package launcher

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/codinganovel/texty/internal/domain"
)

// Client implements domain.Launcher using os/exec.
type Client struct{}

// NewClient creates a new launcher client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.Launcher interface.
var _ domain.Launcher = (*Client)(nil)

// Launch starts the program and returns without waiting for it to exit.
// Stdio is attached so terminal editors get the controlling terminal.
func (c *Client) Launch(spec domain.LaunchSpec) error {
	program := spec.Program
	if resolved, err := exec.LookPath(program); err == nil {
		program = resolved
	}

	// #nosec G204 - program and args come from the resolved Request
	cmd := exec.Command(program, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", spec.Program, err)
	}
	// Detach: the child outlives this process.
	_ = cmd.Process.Release()
	return nil
}

// Finder implements domain.CommandFinder using exec.LookPath.
type Finder struct{}

// NewFinder creates a new PATH probe.
func NewFinder() *Finder {
	return &Finder{}
}

// Ensure Finder implements domain.CommandFinder interface.
var _ domain.CommandFinder = (*Finder)(nil)

// Find returns the resolved path of command on PATH.
func (f *Finder) Find(command string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", command, err)
	}
	return path, nil
}
