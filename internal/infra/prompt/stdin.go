// Package prompt provides interactive parameter prompting.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/codinganovel/texty/internal/domain"
)

// Ensure Stdin implements domain.Prompter.
var _ domain.Prompter = (*Stdin)(nil)

// Stdin is a line-oriented prompter reading from an io.Reader.
// It works on plain pipes, which keeps scripted invocations and tests
// off any terminal requirement.
type Stdin struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdin creates a prompter reading from in and writing labels to out.
func NewStdin(in io.Reader, out io.Writer) *Stdin {
	return &Stdin{in: bufio.NewReader(in), out: out}
}

// Ask prints the label and returns the entered line, trimmed.
func (p *Stdin) Ask(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// Confirm asks a y/N question. Only "y" or "yes" (any case) is affirmative.
func (p *Stdin) Confirm(question string) (bool, error) {
	_, _ = fmt.Fprintf(p.out, "%s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer), nil
}

func (p *Stdin) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			// EOF with nothing read counts as a blank answer.
			return "", nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// IsAffirmative reports whether answer means yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
