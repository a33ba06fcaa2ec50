package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) historyCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			items := env.History.History()
			if asJSON {
				return printJSON(cmd, items)
			}
			fmt.Fprint(cmd.OutOrStdout(), newStyles(cmd.OutOrStdout(), currentTheme(cmd.Context(), env)).history(items))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output history as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			if err := env.History.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}
