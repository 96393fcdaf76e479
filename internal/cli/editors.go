package cli

import (
	"fmt"

	"github.com/codinganovel/texty/internal/app"
	"github.com/spf13/cobra"
)

// newEditorsCommand creates the editors command.
func newEditorsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "editors",
		Short: "List known editors and what would be used",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListEditorsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			for _, e := range out.Editors {
				marker := " "
				if e.Current {
					marker = "*"
				}
				availability := "not found"
				if e.Available {
					availability = e.Path
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %-8s %s\n", marker, e.Name, e.Command, availability)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nResolved editor: %s (from %s)\n",
				out.Resolved.Command, out.Resolved.Source)
			return nil
		},
	}
}
