package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/gitexplore/internal/match"
	"github.com/VoxDroid/gitexplore/internal/present"
)

var optionsCmd = &cobra.Command{
	Use:   "options [key]",
	Short: "Browse the reference options",
	Long: `Without a key, list the primary options and their keys. With a key, list
every phrase the key expands to together with its usage. A key that is not
found is looked up like the first word of a query. Example:
  gitexplore options delete`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		tree, err := a.loadTree()
		if err != nil {
			return err
		}
		p := present.New(cmd.OutOrStdout(), a.settings.Color)
		if len(args) == 0 {
			return p.Primaries(tree.Primary)
		}

		key := args[0]
		if _, ok := tree.Secondary[key]; !ok {
			n, err := match.Primary(tree, key)
			if err != nil {
				return usageError{err}
			}
			a.logger.Debug("resolved key", "arg", key, "key", n.Value)
			key = n.Value
		}
		cands := match.Combine(tree, key)
		if len(cands) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no options under %s\n", key)
			return nil
		}
		return p.Candidates(cands)
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
