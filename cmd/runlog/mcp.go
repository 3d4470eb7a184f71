// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/runlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to the configured log file
or stderr, never stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "runlog": {
        "command": "runlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_run          Log or replace the run on a date
  get_run          Get the run on a date
  list_runs        List recent runs
  delete_run       Delete the run on a date
  query_runs       Query runs by inclusive bounds
  weekly_summary   Weekly distance, sessions and mean speed
  import_csv       Import runs from CSV text
  create_plan      Create an empty training plan
  add_plan_week    Append a week to a plan
  list_plans       List training plans
  get_plan         Get every week of a plan
  drop_plan        Delete a plan

AVAILABLE RESOURCES:

  runlog://recent    Last 10 runs
  runlog://weekly    Weekly summary over the default lookback
  runlog://plans     Plans with weekly totals
  runlog://session   Dates changed since the server started`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, version)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
