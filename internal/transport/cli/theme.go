package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leximind/internal/domain"
)

func (r *runner) themeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeDark), string(domain.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				theme, err := env.Themes.Theme(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(theme))
				return nil
			}

			theme, err := domain.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if err := env.Themes.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", theme)
			return nil
		},
	}
}
