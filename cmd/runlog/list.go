// ABOUTME: CLI command for listing logged runs.
// ABOUTME: Newest first by default, limited to the most recent entries.
package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listAsc   bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged runs",
	Long: `List logged runs, newest first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  DURATION  DISTANCE  PACE  SPEED  LOCATION

EXAMPLES:

  runlog list              # Last 20 runs
  runlog list -n 0         # Every run
  runlog list -n 5 --asc   # Oldest five runs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		order := models.Descending
		if listAsc {
			order = models.Ascending
		}

		runs, err := svc.Store().ListRuns(order)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if listLimit > 0 && len(runs) > listLimit {
			runs = runs[:listLimit]
		}

		printRuns(cmd, runs)
		return nil
	},
}

func printRuns(cmd *cobra.Command, runs []*models.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
		return
	}
	for _, r := range runs {
		printRun(cmd, r)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max runs to show (0 for all)")
	listCmd.Flags().BoolVar(&listAsc, "asc", false, "oldest first")
	rootCmd.AddCommand(listCmd)
}
