package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// runner holds the state shared by all commands of one invocation.
type runner struct {
	factory Factory
	version string
	opts    Options
	env     *Env
}

func newRunner(factory Factory, version string) *runner {
	return &runner{factory: factory, version: version}
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context, factory Factory, version string) int {
	r := newRunner(factory, version)
	defer r.close()

	if err := r.rootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "leximind",
		Short: "Look up English words with dictionary data and AI insights",
		Long: `LexiMind looks words up in a public dictionary and adds AI-generated
insights: a Hindi meaning, example sentences, a mnemonic, etymology and a
usage tip. Search history, the signed-in user and the theme are kept on
this device.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&r.opts.ConfigPath, "config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVar(&r.opts.Ephemeral, "ephemeral", false, "keep history, session and theme in memory only")

	root.AddCommand(
		r.lookupCommand(),
		r.historyCommand(),
		r.loginCommand(),
		r.logoutCommand(),
		r.whoamiCommand(),
		r.themeCommand(),
		r.serveCommand(),
		r.versionCommand(),
	)
	return root
}

// load builds the Env on first use.
func (r *runner) load(cmd *cobra.Command) (*Env, error) {
	if r.env != nil {
		return r.env, nil
	}
	env, err := r.factory(cmd.Context(), r.opts)
	if err != nil {
		return nil, err
	}
	r.env = env
	return env, nil
}

func (r *runner) close() {
	if r.env != nil && r.env.Close != nil {
		_ = r.env.Close()
	}
	r.env = nil
}
