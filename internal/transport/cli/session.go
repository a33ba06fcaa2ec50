package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leximind/internal/service/auth"
)

func (r *runner) loginCommand() *cobra.Command {
	var creds auth.Credentials

	cmd := &cobra.Command{
		Use:     "login USERNAME",
		Aliases: []string{"signup"},
		Short:   "Sign in (or sign up) under a username",
		Long: `Signs in under USERNAME. No password is checked: any non-empty username is
accepted and the e-mail is always USERNAME@example.com.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			creds.Username = args[0]
			user, err := env.Auth.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Password, "password", "", "accepted and ignored")
	cmd.Flags().StringVar(&creds.Email, "email", "", "accepted and ignored")
	return cmd
}

func (r *runner) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			if err := env.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func (r *runner) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			user := env.Auth.Current()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Username, user.Email)
			return nil
		},
	}
}
