package cli

import (
	"fmt"

	"github.com/codinganovel/texty/internal/app"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the merged configuration (defaults, then the global file, then a
repo-local .texty.toml, later sources winning).

With --init, write a commented starter file to the global config directory
instead. Fails if the file already exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initialize {
				out, err := c.InitConfigUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out.Path)
				return nil
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			encoded, err := toml.Marshal(out.Config)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# global config dir: %s\n%s", out.GlobalDir, encoded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "Write a starter config file")
	return cmd
}
