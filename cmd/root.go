package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/gitexplore/internal/match"
	"github.com/VoxDroid/gitexplore/internal/present"
	"github.com/VoxDroid/gitexplore/internal/query"
)

var rootCmd = &cobra.Command{
	Use:   "gitexplore [words...]",
	Short: "Find the git command for what you want to do",
	Long: `gitexplore looks up git commands from a plain description of the action.
Examples:
  gitexplore add a new branch and switch to it
  gitexplore "delete the remote branch"
  gitexplore --mode word show commit history`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		// the tree is loaded before the query is looked at, so corrupt
		// data is reported even for an empty query
		tree, err := a.loadTree()
		if err != nil {
			return err
		}

		raw := query.Tokens(args)
		tokens, err := query.Normalize(raw)
		if err != nil {
			return err
		}
		a.logger.Debug("normalized query", "raw", raw, "tokens", tokens, "mode", a.mode)

		runner := match.NewRunner(tree, a.mode, a.logger)
		out, err := runner.Run(tokens)
		if err != nil && !errors.Is(err, match.ErrNoMatch) {
			return err
		}
		if err := present.New(cmd.OutOrStdout(), a.settings.Color).Outcome(out); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		a.record(raw, tokens, out, tree.Digest)
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolP("debug", "d", false, "Log each matching step to stderr")
	f.String("mode", "", "Scoring mode: substring (default) or word")
	f.String("data", "", "Read the reference options from this JSON/JSONC/YAML file")
	f.Bool("no-history", false, "Do not record this query in the history log")
	f.Bool("no-color", false, "Disable styled output")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}
