// Package cli provides the command-line interface for texty.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/codinganovel/texty/internal/app"
	"github.com/codinganovel/texty/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Faint(true)
)

// render applies style unless color is disabled in the config.
func render(c *app.Container, style lipgloss.Style, s string) string {
	if c != nil && c.Config != nil && !c.Config.ColorEnabled() {
		return s
	}
	return style.Render(s)
}

// NewRootCommand creates the root command for texty.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var in usecase.CreateFileInput

	root := &cobra.Command{
		Use:   "texty",
		Short: "Create a text file and open it in your editor",
		Long: `texty creates (or overwrites) a text file and hands it off to an editor.

Missing parameters are prompted interactively. A target directory starting
with "@" is resolved against the enclosing git repository root ("@" alone
is the root itself, "@/docs" a subdirectory of it).

The editor is resolved in order: --editor, [editor] command in the config,
$EDITOR, $VISUAL, a PATH probe over known editors, then the platform
fallback (notepad on Windows, vi elsewhere).`,
		Example: `  texty --name notes.md --dir ~/notes
  texty --name todo.txt --dir @/docs --content "- [ ] first item"
  texty --name journal.md --dir ~/journal --template daily --force`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.ContentSet = cmd.Flags().Changed("content")
			if in.TargetDir == "" {
				in.TargetDir = c.Config.Defaults.Dir
			}
			if c.Config.Defaults.Force {
				in.Force = true
			}

			out, err := c.CreateFileUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if out.Aborted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(),
					render(c, noticeStyle, fmt.Sprintf("Aborted, %s left untouched", out.Path)))
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				render(c, successStyle, fmt.Sprintf("Texty: created %s", out.Path)))
			return nil
		},
	}

	root.Flags().StringVarP(&in.FileName, "name", "n", "", "Name of the file to create")
	root.Flags().StringVarP(&in.TargetDir, "dir", "d", "", "Target directory (\"@\" prefix = git repo root)")
	root.Flags().StringVarP(&in.Content, "content", "c", "", "Initial content (blank creates an empty file)")
	root.Flags().StringVarP(&in.Template, "template", "t", "", "Named content template")
	root.Flags().StringVarP(&in.Editor, "editor", "e", "", "Editor command to hand the file to")
	root.Flags().BoolVarP(&in.Force, "force", "f", false, "Overwrite an existing file without asking")
	root.Flags().BoolVar(&in.NoEdit, "no-edit", false, "Create the file without opening an editor")
	root.MarkFlagsMutuallyExclusive("content", "template")

	root.AddCommand(
		newConfigCommand(c),
		newEditorsCommand(c),
		newTemplatesCommand(c),
	)

	return root
}
