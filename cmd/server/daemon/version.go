package daemon

import (
	"fmt"

	"github.com/spf13/cobra"

	"payzee/internal/platform/health"
)

func (a *App) installVersion() {
	a.cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of " + CmdName + " and exit",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", CmdName, health.Version)
			return err
		},
	})
}
