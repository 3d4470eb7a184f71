// ABOUTME: CLI command for logging a run.
// ABOUTME: Validates raw input, derives pace and speed, and upserts by date.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var addDate string

var addCmd = &cobra.Command{
	Use:     "add <duration> <distance> <location...>",
	Aliases: []string{"a", "log"},
	Short:   "Log a run",
	Long: `Log a run. Duration is HH:MM:SS, MM:SS, or a Go duration such as 45m.
Distance is in kilometres. Everything after the distance is the location.

Pace (min/km) and speed (km/h) are derived from duration and distance.
There is one run per date: logging a date twice replaces the first run.

Examples:
  runlog add 01:30:00 15 Hyde Park
  runlog add 26:13 5 "Parkrun Bushy" --date 2024-03-02
  runlog add 45m 8.2 Track`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := addDate
		if date == "" {
			date = svc.Today().String()
		}

		in := models.RunInput{
			Date:     date,
			Duration: args[0],
			Distance: args[1],
			Location: strings.Join(args[2:], " "),
		}

		result, err := svc.Submit(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to log run: %w", err)
		}

		out := cmd.OutOrStdout()
		verb := "Logged"
		if result.Action == models.ActionUpdated {
			verb = "Replaced"
		}
		color.New(color.FgGreen).Fprintf(out, "✓ %s run on %s\n", verb, result.Run.Date)
		printRun(cmd, result.Run)
		if w := result.Weather; w != nil {
			fmt.Fprintf(out, "  %s %.1f°C, %.0f hPa\n",
				color.New(color.Faint).Sprint("weather"), w.TemperatureC, w.PressureHPa)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "run date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd)
}
