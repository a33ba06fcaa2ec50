package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "leximind version %s\n", r.version)
		},
	}
}
