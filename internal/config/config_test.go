// ABOUTME: Tests for runlog configuration management.
// ABOUTME: Covers load, save, defaults, validation, env overrides, and path expansion.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/runlog/internal/models"
)

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	// GetDataDir with empty DataDir should return storage.DataDir()
	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/runlog-test"}
	if got := cfg.GetDataDir(); got != "/tmp/runlog-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/runlog-test")
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/runlog-test"}
	if got := cfg.GetDBPath(); got != "/tmp/runlog-test/runlog.db" {
		t.Errorf("GetDBPath() = %q", got)
	}

	cfg.DBName = "running_data.db"
	if got := cfg.GetDBPath(); got != "/tmp/runlog-test/running_data.db" {
		t.Errorf("GetDBPath() = %q", got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}

	got := ExpandPath("~/data/runlog")
	want := filepath.Join(home, "data/runlog")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/runlog\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/runlog"); got != "data/runlog" {
		t.Errorf("ExpandPath(\"data/runlog\") = %q, want %q", got, "data/runlog")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetWeekAnchor(); got != time.Sunday {
		t.Errorf("GetWeekAnchor() = %v, want Sunday", got)
	}
	if got := cfg.GetLookbackMonths(); got != DefaultLookbackMonths {
		t.Errorf("GetLookbackMonths() = %d, want %d", got, DefaultLookbackMonths)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", got)
	}
	if got := cfg.GetWeatherTimeout(); got != 5*time.Second {
		t.Errorf("GetWeatherTimeout() = %v, want 5s", got)
	}
}

func TestLookbackZeroIsKept(t *testing.T) {
	zero := 0
	cfg := &Config{LookbackMonths: &zero}
	if got := cfg.GetLookbackMonths(); got != 0 {
		t.Errorf("GetLookbackMonths() = %d, want 0", got)
	}
}

func TestGetWeekAnchorMonday(t *testing.T) {
	cfg := &Config{WeekAnchor: "Monday"}
	if got := cfg.GetWeekAnchor(); got != time.Monday {
		t.Errorf("GetWeekAnchor() = %v, want Monday", got)
	}
}

func TestValidate(t *testing.T) {
	negative := -1
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"good anchor", Config{WeekAnchor: "mon"}, false},
		{"bad anchor", Config{WeekAnchor: "someday"}, true},
		{"negative lookback", Config{LookbackMonths: &negative}, true},
		{"bad log level", Config{LogLevel: "chatty"}, true},
		{"db name with dir", Config{DBName: "../x.db"}, true},
		{"bad timeout", Config{Weather: WeatherConfig{Timeout: "soon"}}, true},
		{"good timeout", Config{Weather: WeatherConfig{Timeout: "2s"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSet(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Set("week_anchor", "monday"); err != nil {
		t.Fatalf("Set(week_anchor) failed: %v", err)
	}
	if err := cfg.Set("lookback_months", "6"); err != nil {
		t.Fatalf("Set(lookback_months) failed: %v", err)
	}
	if err := cfg.Set("weather.api_key", "abc"); err != nil {
		t.Fatalf("Set(weather.api_key) failed: %v", err)
	}

	if cfg.GetWeekAnchor() != time.Monday || cfg.GetLookbackMonths() != 6 || cfg.Weather.APIKey != "abc" {
		t.Errorf("Unexpected config after Set: %+v", cfg)
	}

	if err := cfg.Set("nope", "x"); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for unknown key, got %v", err)
	}
	if err := cfg.Set("lookback_months", "many"); !errors.Is(err, models.ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestWeatherAPIKeyEnvOverride(t *testing.T) {
	t.Setenv("RUNLOG_WEATHER_API_KEY", "")
	t.Setenv("OPEN_WEATHER_MAP_API_KEY", "")

	cfg := &Config{Weather: WeatherConfig{APIKey: "from-file"}}
	if got := cfg.GetWeatherAPIKey(); got != "from-file" {
		t.Errorf("GetWeatherAPIKey() = %q, want from-file", got)
	}

	t.Setenv("OPEN_WEATHER_MAP_API_KEY", "legacy")
	if got := cfg.GetWeatherAPIKey(); got != "legacy" {
		t.Errorf("GetWeatherAPIKey() = %q, want legacy", got)
	}

	t.Setenv("RUNLOG_WEATHER_API_KEY", "preferred")
	if got := cfg.GetWeatherAPIKey(); got != "preferred" {
		t.Errorf("GetWeatherAPIKey() = %q, want preferred", got)
	}
}

func TestWeatherProviderDisabledWithoutKey(t *testing.T) {
	t.Setenv("RUNLOG_WEATHER_API_KEY", "")
	t.Setenv("OPEN_WEATHER_MAP_API_KEY", "")

	cfg := &Config{}
	if p := cfg.WeatherProvider(); p != nil {
		t.Errorf("Expected nil provider without API key, got %T", p)
	}

	cfg.Weather.APIKey = "key"
	if p := cfg.WeatherProvider(); p == nil {
		t.Error("Expected provider with API key")
	}
}

func TestLoggerParams(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFile: "/tmp/runlog/app.log", LogJSON: true}
	p := cfg.LoggerParams()

	if p.LogLevel != "debug" || p.LogFileName != "/tmp/runlog/app.log" || !p.LogFormatJSON || !p.LogToStderr {
		t.Errorf("Unexpected logger params: %+v", p)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should return defaults
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	lookback := 6
	cfg := &Config{
		DataDir:        "/tmp/runlog-data",
		WeekAnchor:     "monday",
		LookbackMonths: &lookback,
		Weather:        WeatherConfig{Country: "GB", Timeout: "3s"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.DataDir != "/tmp/runlog-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/runlog-data")
	}
	if loaded.GetLookbackMonths() != 6 {
		t.Errorf("LookbackMonths mismatch: got %d", loaded.GetLookbackMonths())
	}
	if loaded.GetWeatherTimeout() != 3*time.Second {
		t.Errorf("Weather timeout mismatch: got %v", loaded.GetWeatherTimeout())
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{WeekAnchor: "sunday"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "runlog")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "runlog")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	_, err := Load()
	if !errors.Is(err, models.ErrParse) {
		t.Errorf("Expected ErrParse for invalid JSON config, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "runlog")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte(`{"week_anchor":"funday"}`), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid week_anchor")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "runlog", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorage(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{DataDir: tmpDir}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	dbPath := filepath.Join(tmpDir, "runlog.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected runlog.db to be created")
	}
	if repo.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", repo.Path(), dbPath)
	}
}

func TestConfigJSONSerialization(t *testing.T) {
	cfg := &Config{
		DataDir: "~/runlog-data",
		Weather: WeatherConfig{APIKey: "k"},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.Weather.APIKey != "k" {
		t.Errorf("Weather.APIKey mismatch: got %q", loaded.Weather.APIKey)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	cfg := &Config{}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Empty config should result in "{}" since fields have omitempty
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
