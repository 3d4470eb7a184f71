// ABOUTME: CLI command for copying runs and plans from another database file.
// ABOUTME: Used when moving the data directory or merging an old log.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/config"
	"github.com/harperreed/runlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy runs and plans from another runlog database",
	Long: `Copy every run and training plan from another runlog database into
the current one.

IMPORTANT:

  - Runs are matched by date: a run already logged on the same date is replaced
  - Plans must not already exist in the current database
  - Run with --dry-run first to see what would be copied

USAGE:

  runlog migrate --from ~/old/runlog.db --dry-run
  runlog migrate --from ~/old/runlog.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == "" {
			return fmt.Errorf("--from is required")
		}
		srcPath := config.ExpandPath(migrateFrom)
		if _, err := os.Stat(srcPath); err != nil {
			return fmt.Errorf("source database: %w", err)
		}

		if abs(srcPath) == abs(store.Path()) {
			return fmt.Errorf("source and destination are the same database: %s", srcPath)
		}

		src, err := storage.Open(storage.Options{Path: srcPath})
		if err != nil {
			return fmt.Errorf("failed to open source database: %w", err)
		}
		defer src.Close()

		out := cmd.OutOrStdout()
		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			runs, err := src.CountRuns()
			if err != nil {
				return err
			}
			plans, err := src.ListPlans()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Would copy %d runs and %d plans from %s\n", runs, len(plans), srcPath)
			return nil
		}

		summary, err := storage.MigrateData(src, store)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Migrated from %s\n", srcPath)
		fmt.Fprintf(out, "  %d runs (%d replaced), %d plans (%d weeks)\n",
			summary.Runs, summary.Updated, summary.Plans, summary.PlanWeeks)
		return nil
	},
}

func abs(p string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return p
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source database file")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
