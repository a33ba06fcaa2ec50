package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leximind/internal/domain"
)

func (r *runner) lookupCommand() *cobra.Command {
	var (
		noAI   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Look up one or more words",
		Long: `Looks each word up in the dictionary and prints its card, then waits for
the AI insights. An argument of the form @N searches the N-th history item.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := r.load(cmd)
			if err != nil {
				return err
			}
			return runLookup(cmd, env, args, noAI, asJSON)
		},
	}

	cmd.Flags().BoolVar(&noAI, "no-ai", false, "do not wait for AI insights")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final display state as JSON")
	return cmd
}

func runLookup(cmd *cobra.Command, env *Env, args []string, noAI, asJSON bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	s := newStyles(out, currentTheme(ctx, env))

	var failures []error
	for i, arg := range args {
		word, err := resolveWord(env, arg)
		if err != nil {
			return err
		}

		state, err := env.Lookup.Search(ctx, word)
		var le *domain.LookupError
		switch {
		case errors.As(err, &le):
			if asJSON {
				if err := printJSON(cmd, state); err != nil {
					return err
				}
			}
			msg := state.Error
			if len(args) > 1 {
				msg = word + ": " + msg
			}
			failures = append(failures, errors.New(msg))
			continue
		case err != nil:
			return err
		}

		if !noAI {
			if err := env.Lookup.WaitInsights(ctx); err != nil {
				return err
			}
			state = env.Lookup.State()
		}

		if asJSON {
			if err := printJSON(cmd, state); err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, s.wordCard(state.Entry))
		switch {
		case state.Insights != nil:
			fmt.Fprintln(out)
			fmt.Fprint(out, s.insights(state.Insights))
		case noAI:
			fmt.Fprintln(out, s.Muted.Render("AI insights skipped."))
		}
	}

	return errors.Join(failures...)
}

// resolveWord turns "@N" into the N-th history word.
func resolveWord(env *Env, arg string) (string, error) {
	ref, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return "", domain.NewValidationError("word", fmt.Sprintf("%q is not a history reference", arg))
	}
	return env.History.HistoryWord(n)
}

func currentTheme(ctx context.Context, env *Env) domain.Theme {
	theme, err := env.Themes.Theme(ctx)
	if err != nil {
		return domain.ThemeLight
	}
	return theme
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
