package cli

import (
	"fmt"

	"github.com/codinganovel/texty/internal/app"
	"github.com/spf13/cobra"
)

// newTemplatesCommand creates the templates command.
func newTemplatesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available content templates",
		Long: `List content templates usable with --template.

Templates come from templates.yaml in the global config directory, with a
repo-local .texty.yaml overriding entries of the same name. Bodies are
text/template with the sprig function set; {{.Name}}, {{.Path}}, {{.Dir}}
and {{.Now}} are available.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTemplatesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Templates) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No templates defined")
				return nil
			}
			for _, t := range out.Templates {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", t.Name, t.Source)
			}
			return nil
		},
	}
}
