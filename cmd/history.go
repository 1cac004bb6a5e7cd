package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/gitexplore/internal/db"
	"github.com/VoxDroid/gitexplore/internal/history"
	"github.com/VoxDroid/gitexplore/internal/utils"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously run queries",
	Long:  "Show previously run queries, newest first (id, timestamp, outcome, query, usage)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		r := history.NewRepository(dbConn)
		defer func() { _ = r.Close() }()

		if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !utils.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete every history entry?") {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			n, err := r.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", n)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := r.List(limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no history")
			return nil
		}
		for _, e := range entries {
			usage := ""
			if e.Usage.Valid {
				usage = strings.ReplaceAll(e.Usage.String, "\n", "; ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", e.ID, e.CreatedAt, e.Outcome, e.Raw, usage)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", history.DefaultLimit, "Number of entries to show")
	historyCmd.Flags().Bool("clear", false, "Delete every entry")
	historyCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation when clearing")
	rootCmd.AddCommand(historyCmd)
}
