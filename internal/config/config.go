// ABOUTME: Runlog configuration management.
// ABOUTME: Handles settings, preferences, and the storage factory function.

package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/runlog/internal/aggregate"
	"github.com/harperreed/runlog/internal/logging"
	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/storage"
	"github.com/harperreed/runlog/internal/weather"
)

// Defaults applied when a field is left empty.
const (
	DefaultLookbackMonths = 3
	DefaultLogLevel       = "warn"
	DefaultWeatherCacheMB = 1
	DefaultWeatherTimeout = 5 * time.Second
)

// Environment variables that override the weather API key, first match wins.
var weatherKeyEnv = []string{"RUNLOG_WEATHER_API_KEY", "OPEN_WEATHER_MAP_API_KEY"}

// Config stores runlog configuration.
type Config struct {
	// DataDir is the root directory for data storage.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/runlog.
	DataDir string `json:"data_dir,omitempty"`

	// DBName is the SQLite file name inside DataDir. Defaults to runlog.db.
	DBName string `json:"db_name,omitempty"`

	// WeekAnchor is the weekday weeks start on, e.g. "sunday" (default) or "monday".
	WeekAnchor string `json:"week_anchor,omitempty"`

	// LookbackMonths is the default weekly summary window.
	LookbackMonths *int `json:"lookback_months,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty"`
	LogJSON  bool   `json:"log_json,omitempty"`

	Weather WeatherConfig `json:"weather,omitzero"`
}

// WeatherConfig configures the optional weather lookup.
type WeatherConfig struct {
	APIKey  string `json:"api_key,omitempty"`
	Country string `json:"country,omitempty"`
	CacheMB int    `json:"cache_mb,omitempty"`
	// Timeout is a Go duration string such as "5s".
	Timeout string `json:"timeout,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the full database file path.
func (c *Config) GetDBPath() string {
	name := c.DBName
	if name == "" {
		name = storage.DefaultDBName
	}
	return filepath.Join(c.GetDataDir(), name)
}

// GetWeekAnchor returns the configured week start, defaulting to Sunday.
func (c *Config) GetWeekAnchor() time.Weekday {
	if c.WeekAnchor == "" {
		return aggregate.DefaultAnchor
	}
	day, err := aggregate.ParseWeekday(c.WeekAnchor)
	if err != nil {
		return aggregate.DefaultAnchor
	}
	return day
}

// GetLookbackMonths returns the configured lookback, defaulting to 3 months.
func (c *Config) GetLookbackMonths() int {
	if c.LookbackMonths == nil {
		return DefaultLookbackMonths
	}
	return *c.LookbackMonths
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetWeatherAPIKey returns the weather key, preferring the environment.
func (c *Config) GetWeatherAPIKey() string {
	for _, name := range weatherKeyEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return c.Weather.APIKey
}

// GetWeatherTimeout returns the per-lookup timeout.
func (c *Config) GetWeatherTimeout() time.Duration {
	if c.Weather.Timeout == "" {
		return DefaultWeatherTimeout
	}
	d, err := time.ParseDuration(c.Weather.Timeout)
	if err != nil || d <= 0 {
		return DefaultWeatherTimeout
	}
	return d
}

// Validate checks every field that has a constrained set of values.
func (c *Config) Validate() error {
	if c.WeekAnchor != "" {
		if _, err := aggregate.ParseWeekday(c.WeekAnchor); err != nil {
			return fmt.Errorf("week_anchor: %w", err)
		}
	}
	if c.LookbackMonths != nil && *c.LookbackMonths < 0 {
		return fmt.Errorf("%w: lookback_months must not be negative", models.ErrInvalidInput)
	}
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", models.ErrInvalidInput, c.LogLevel)
	}
	if c.DBName != "" && filepath.Base(c.DBName) != c.DBName {
		return fmt.Errorf("%w: db_name must be a file name, got %q", models.ErrInvalidInput, c.DBName)
	}
	if c.Weather.CacheMB < 0 {
		return fmt.Errorf("%w: weather.cache_mb must not be negative", models.ErrInvalidInput)
	}
	if c.Weather.Timeout != "" {
		if d, err := time.ParseDuration(c.Weather.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("%w: weather.timeout %q", models.ErrInvalidInput, c.Weather.Timeout)
		}
	}
	return nil
}

// Set assigns one field by its JSON key, e.g. "week_anchor" or "weather.api_key".
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_dir":
		c.DataDir = value
	case "db_name":
		c.DBName = value
	case "week_anchor":
		c.WeekAnchor = value
	case "lookback_months":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: lookback_months %q", models.ErrParse, value)
		}
		c.LookbackMonths = &n
	case "log_level":
		c.LogLevel = value
	case "log_file":
		c.LogFile = value
	case "log_json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: log_json %q", models.ErrParse, value)
		}
		c.LogJSON = b
	case "weather.api_key":
		c.Weather.APIKey = value
	case "weather.country":
		c.Weather.Country = value
	case "weather.cache_mb":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: weather.cache_mb %q", models.ErrParse, value)
		}
		c.Weather.CacheMB = n
	case "weather.timeout":
		c.Weather.Timeout = value
	case "weather.base_url":
		c.Weather.BaseURL = value
	default:
		return fmt.Errorf("%w: unknown config key %q", models.ErrInvalidInput, key)
	}
	return c.Validate()
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// StorageOptions returns the options the store is opened with.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{Path: c.GetDBPath()}
}

// OpenStorage opens the configured SQLite store.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.StorageOptions())
}

// LoggerParams returns the logging setup for this config.
func (c *Config) LoggerParams() logging.LoggerSetupParams {
	return logging.LoggerSetupParams{
		LogFileName:   ExpandPath(c.LogFile),
		LogToStderr:   c.LogFile != "",
		LogLevel:      c.GetLogLevel(),
		LogFormatJSON: c.LogJSON,
	}
}

// WeatherProvider returns the weather lookup, or nil when no API key is configured.
func (c *Config) WeatherProvider() weather.Provider {
	key := c.GetWeatherAPIKey()
	if key == "" {
		return nil
	}
	cacheMB := c.Weather.CacheMB
	if cacheMB == 0 {
		cacheMB = DefaultWeatherCacheMB
	}
	client := &http.Client{Timeout: c.GetWeatherTimeout()}
	return weather.NewApi(c.Weather.BaseURL, key, c.Weather.Country, cacheMB, client)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "runlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: config %s: %w", models.ErrParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
