package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/codinganovel/texty/internal/domain"
)

// Ensure TUI implements domain.Prompter.
var _ domain.Prompter = (*TUI)(nil)

// TUI prompts with an inline bubbletea text input. Selected via
// [ui] prompt = "tui" in the config.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI creates a TUI prompter bound to the given streams.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Ask runs a single-field input program and returns the entered value.
func (p *TUI) Ask(label string) (string, error) {
	m := newAskModel(label)
	final, err := p.run(m)
	if err != nil {
		return "", err
	}
	return final.(askModel).value(), nil
}

// Confirm runs a y/N key prompt. Only 'y' is affirmative.
func (p *TUI) Confirm(question string) (bool, error) {
	m := confirmModel{question: question}
	final, err := p.run(m)
	if err != nil {
		return false, err
	}
	return final.(confirmModel).accepted, nil
}

func (p *TUI) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

type askModel struct {
	input textinput.Model
	label string
	done  bool
}

func newAskModel(label string) askModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return askModel{input: ti, label: label}
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			// Abort leaves the answer blank; the caller decides what a
			// blank answer means.
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m askModel) View() string {
	if m.done {
		return ""
	}
	return labelStyle.Render(m.label) + "\n" + m.input.View() + "\n"
}

func (m askModel) value() string {
	return m.input.Value()
}

type confirmModel struct {
	question string
	accepted bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.accepted = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.accepted {
			answer = "yes"
		}
		return answerStyle.Render(answer) + "\n"
	}
	return labelStyle.Render(m.question) + " " + hintStyle.Render("[y/N]") + "\n"
}
