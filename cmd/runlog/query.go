// ABOUTME: CLI command for querying runs by inclusive column bounds.
// ABOUTME: Every bound is optional; with none set every run is returned.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	queryBounds tracker.BoundsInput
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"q", "find"},
	Short:   "Query runs by date, duration, distance, pace or speed",
	Long: `Query runs, oldest first. All bounds are inclusive and optional.

EXAMPLES:

  runlog query --from 2024-01-01 --to 2024-03-31
  runlog query --min-distance 10 --max-pace 5:30
  runlog query --min-duration 1:00:00 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := svc.Query(queryBounds)
		if err != nil {
			return fmt.Errorf("failed to query runs: %w", err)
		}

		if queryJSON {
			if runs == nil {
				runs = []*models.Run{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		printRuns(cmd, runs)
		return nil
	},
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryBounds.DateFrom, "from", "", "earliest date YYYY-MM-DD")
	f.StringVar(&queryBounds.DateTo, "to", "", "latest date YYYY-MM-DD")
	f.StringVar(&queryBounds.DurationMin, "min-duration", "", "shortest duration HH:MM:SS")
	f.StringVar(&queryBounds.DurationMax, "max-duration", "", "longest duration HH:MM:SS")
	f.StringVar(&queryBounds.DistanceMin, "min-distance", "", "shortest distance in km")
	f.StringVar(&queryBounds.DistanceMax, "max-distance", "", "longest distance in km")
	f.StringVar(&queryBounds.PaceMin, "min-pace", "", "fastest pace M:SS per km")
	f.StringVar(&queryBounds.PaceMax, "max-pace", "", "slowest pace M:SS per km")
	f.StringVar(&queryBounds.SpeedMin, "min-speed", "", "lowest speed in km/h")
	f.StringVar(&queryBounds.SpeedMax, "max-speed", "", "highest speed in km/h")
	f.BoolVar(&queryJSON, "json", false, "print runs as JSON")
	rootCmd.AddCommand(queryCmd)
}
