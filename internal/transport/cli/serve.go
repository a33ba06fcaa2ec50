package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func (r *runner) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves the JSON API until SIGINT or SIGTERM, then shuts down gracefully.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			if env.Serve == nil {
				return errors.New("serve is not available")
			}
			return env.Serve(cmd.Context())
		},
	}
}
