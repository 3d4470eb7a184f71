// ABOUTME: CLI commands for exporting and importing run data.
// ABOUTME: Supports JSON, YAML, Markdown and CSV export; CSV and JSON import.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export run data",
	Long: `Export run data in various formats.

FORMATS:

  json       Full JSON export with plans (suitable for backup/restore)
  yaml       YAML export grouped by month (human-readable)
  markdown   Markdown tables (for documentation/sharing)
  csv        Runs only: Date,Duration,Distance,Pace,Speed,Location

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include runs since this date (markdown only)

EXAMPLES:

  runlog export json -o backup.json
  runlog export csv -o runs.csv
  runlog export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		case "markdown", "md":
			var since *models.Date
			if exportSince != "" {
				d, perr := models.ParseDate(exportSince)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &d
			}
			var md string
			md, err = store.ExportMarkdown(since)
			data = []byte(md)
		case "csv":
			var buf bytes.Buffer
			err = svc.ExportCSV(&buf)
			data = buf.Bytes()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, markdown, or csv)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import runs from CSV or a JSON backup",
	Long: `Import runs from a CSV file or a JSON backup.

CSV files need a header row with date, duration, distance and location
columns; other columns are ignored. A bad row rejects the whole file.
Runs on dates that already have one replace it.

JSON files are backups written by 'runlog export json' and may include plans.

The format is taken from the file extension unless --format is given.

EXAMPLES:

  runlog import runs.csv
  runlog import backup.json
  runlog import export.txt --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		format := importFormat
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
		}

		out := cmd.OutOrStdout()
		switch format {
		case "csv":
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			defer f.Close()

			result, err := svc.ImportCSV(f)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Imported %d runs from %s\n", result.Inserted+result.Updated, filename)
			fmt.Fprintf(out, "  %d new, %d replaced\n", result.Inserted, result.Updated)
		case "json":
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if err := store.ImportJSON(data); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Imported from %s\n", filename)
		default:
			return fmt.Errorf("unknown import format: %q (use csv or json)", format)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include runs since date (YYYY-MM-DD)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "csv or json (default from file extension)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
