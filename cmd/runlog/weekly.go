// ABOUTME: CLI command for the weekly training summary.
// ABOUTME: Prints a gap-free table of weeks or the chart series as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	weeklyLookback int
	weeklyJSON     bool
	weeklyChart    bool
)

var weeklyCmd = &cobra.Command{
	Use:     "weekly",
	Aliases: []string{"w", "summary"},
	Short:   "Show weekly distance, sessions and mean speed",
	Long: `Summarise runs by calendar week over the last few months.

Every week in the window is shown, including weeks with no runs.
Weeks start on the configured anchor day (Sunday unless 'week_anchor' is set).

EXAMPLES:

  runlog weekly                 # Configured lookback (3 months by default)
  runlog weekly --lookback 6    # Last six months
  runlog weekly --json          # Weeks plus chart-ready series
  runlog weekly --chart         # Plot weekly distance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := svc.WeeklySummary(weeklyLookback)
		if err != nil {
			return fmt.Errorf("failed to summarise weeks: %w", err)
		}

		out := cmd.OutOrStdout()
		if weeklyJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		if weeklyChart {
			fmt.Fprintln(out, asciigraph.Plot(summary.Series.TotalDistances,
				asciigraph.Height(8),
				asciigraph.Precision(1),
				asciigraph.Caption(fmt.Sprintf("km per week, %s to %s", summary.From, summary.To)),
			))
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		bold.Fprintf(out, "Weeks %s to %s\n", summary.From, summary.To)
		faint.Fprintf(out, "%s  %s  %s  %s\n",
			padRight("WEEK", 10), padLeft("KM", 7), padLeft("RUNS", 4), padLeft("KM/H", 5))
		for _, w := range summary.Weeks {
			bar := strings.Repeat("▇", int(w.TotalDistance/5+0.5))
			fmt.Fprintf(out, "%s  %s  %s  %s  %s\n",
				w.Start,
				padLeft(fmt.Sprintf("%.2f", w.TotalDistance), 7),
				padLeft(fmt.Sprintf("%d", w.SessionCount), 4),
				padLeft(fmt.Sprintf("%.1f", w.MeanSpeed), 5),
				bar)
		}
		bold.Fprintf(out, "Total %.2f km over %d runs\n", summary.TotalDistance, summary.Sessions)
		return nil
	},
}

func init() {
	weeklyCmd.Flags().IntVarP(&weeklyLookback, "lookback", "l", -1, "months to look back (default from config)")
	weeklyCmd.Flags().BoolVar(&weeklyJSON, "json", false, "print the summary as JSON")
	weeklyCmd.Flags().BoolVar(&weeklyChart, "chart", false, "plot weekly distance as an ASCII chart")
	rootCmd.AddCommand(weeklyCmd)
}
