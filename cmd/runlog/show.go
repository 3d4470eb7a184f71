// ABOUTME: CLI command for showing the run logged on one date.
// ABOUTME: Also holds the shared run line formatter.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <date>",
	Aliases: []string{"get"},
	Short:   "Show the run on a date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}

		run, err := svc.Get(date)
		if errors.Is(err, models.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No run logged on %s.\n", date)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get run: %w", err)
		}

		printRun(cmd, run)
		return nil
	},
}

// printRun writes one run as: ID  DATE  DURATION  DISTANCE  PACE  SPEED  LOCATION
func printRun(cmd *cobra.Command, r *models.Run) {
	faint := color.New(color.Faint)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %s km  %s /km  %s km/h  %s\n",
		faint.Sprint(r.ID.String()[:8]),
		r.Date,
		r.DurationString(),
		padLeft(fmt.Sprintf("%.2f", r.Distance), 6),
		padLeft(r.Pace.String(), 5),
		padLeft(fmt.Sprintf("%.1f", r.Speed), 4),
		truncate(r.Location, 30))
}

func init() {
	rootCmd.AddCommand(showCmd)
}
