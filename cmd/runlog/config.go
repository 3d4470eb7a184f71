// ABOUTME: CLI commands for viewing and changing runlog settings.
// ABOUTME: Works without opening the database.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "View and change settings",
	Annotations: map[string]string{noStore: "true"},
	Long: `View and change runlog settings stored in ~/.config/runlog/config.json.

KEYS:

  data_dir          Directory holding the database (default ~/.local/share/runlog)
  db_name           Database file name (default runlog.db)
  week_anchor       First day of the week: sunday (default) or monday, ...
  lookback_months   Default weekly summary window (default 3)
  log_level         trace, debug, info, warn (default) or error
  log_file          Write logs to this file, rotated
  log_json          Log as JSON: true or false
  weather.api_key   OpenWeatherMap key; enables weather on new runs
  weather.country   Country code used to resolve locations, e.g. GB
  weather.cache_mb  Weather cache size in MB (default 1)
  weather.timeout   Lookup timeout, e.g. 5s
  weather.base_url  Weather API base URL

EXAMPLES:

  runlog config show
  runlog config set week_anchor monday
  runlog config set lookback_months 6`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if c.Weather.APIKey != "" {
			c.Weather.APIKey = "********"
		}
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
