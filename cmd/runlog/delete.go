// ABOUTME: CLI command for deleting the run on a date.
// ABOUTME: Deleting a date with no run is reported, not treated as an error.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete the run on a date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}

		deleted, err := svc.Delete(date)
		if err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}

		out := cmd.OutOrStdout()
		if !deleted {
			fmt.Fprintf(out, "No run logged on %s.\n", date)
			return nil
		}
		color.New(color.FgGreen).Fprintf(out, "✓ Deleted run on %s\n", date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
