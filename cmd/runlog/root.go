// ABOUTME: Root Cobra command for runlog CLI.
// ABOUTME: Loads config, sets up logging and opens the store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/runlog/internal/config"
	"github.com/harperreed/runlog/internal/logging"
	"github.com/harperreed/runlog/internal/storage"
	"github.com/harperreed/runlog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *storage.DB
	svc   *tracker.Service

	dbPath   string
	logLevel string
)

// noStore marks commands that run without opening the database.
const noStore = "no-store"

var rootCmd = &cobra.Command{
	Use:   "runlog",
	Short: "Running workout log and weekly training summary",
	Long: `Runlog keeps a log of your runs, one per day, and summarises them by week.

WHAT IT TRACKS:

  For each run: date, duration, distance and location.
  Pace (min/km) and speed (km/h) are derived when the run is saved.

QUICK START:

  $ runlog add 01:30:00 15 "Hyde Park"             # Log today's run
  $ runlog add 45m 8.2 Track --date 2024-03-01     # Log a past run
  $ runlog list                                    # See recent runs
  $ runlog weekly                                  # Weekly totals, last 3 months
  $ runlog weekly --lookback 6 --json              # Chart-ready series

LOGGING THE SAME DAY TWICE:

  There is one run per date. Adding a run on a date that already has one
  replaces it; pace and speed are recomputed.

TRAINING PLANS:

  $ runlog plan create marathon
  $ runlog plan add-week marathon 0 5 0 8 0 0 16   # Mon..Sun distances
  $ runlog plan import marathon plan.csv
  $ runlog plan show marathon

MCP INTEGRATION:

  Run 'runlog mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "runlog": { "command": "runlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Runs are stored in SQLite at ~/.local/share/runlog/runlog.db.
  Settings live in ~/.config/runlog/config.json (see 'runlog config').`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStore(cmd) {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		params := cfg.LoggerParams()
		if logLevel != "" {
			params.LogLevel = logLevel
		}
		logging.Setup(params)

		opts := cfg.StorageOptions()
		if dbPath != "" {
			opts.Path = config.ExpandPath(dbPath)
		}

		_ = closeStore()
		store, err = storage.Open(opts)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		svc = tracker.New(store, tracker.Options{
			Anchor:         cfg.GetWeekAnchor(),
			LookbackMonths: cfg.GetLookbackMonths(),
			Weather:        cfg.WeatherProvider(),
			WeatherTimeout: cfg.GetWeatherTimeout(),
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// needsStore reports whether cmd or any of its parents wants the database.
func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[noStore]; ok {
			return false
		}
	}
	return true
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	svc = nil
	return err
}

// Execute runs the root command and releases the store even when a command fails.
func Execute() error {
	defer func() { _ = closeStore() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}
