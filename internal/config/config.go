// Package config loads promptlens configuration from a YAML file, with sane
// defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".promptlens.yaml"

// EnvDatabasePath overrides the configured history database path.
const EnvDatabasePath = "PROMPTLENS_DB"

// Config holds all promptlens configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig configures the report history store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // duration string, e.g. "500ms"
}

// DebounceDuration parses the configured debounce, falling back to the
// default on empty or malformed values.
func (w WatchConfig) DebounceDuration() time.Duration {
	const fallback = 500 * time.Millisecond
	if w.Debounce == "" {
		return fallback
	}
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode"` // master toggle; false = quiet
	Categories map[string]bool `yaml:"categories"` // per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Everything is off unless debug_mode is set; categories default to on when
// not listed.
func (c LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, ok := c.Categories[category]
	if !ok {
		return true
	}
	return enabled
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(home, ".promptlens", "history.db"),
		},
		Watch: WatchConfig{Debounce: "500ms"},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. An empty path tries DefaultFileName in
// the working directory; a missing default file yields Default() without
// error, while an explicitly named missing file is an error. The
// PROMPTLENS_DB environment variable overrides the database path either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if env := os.Getenv(EnvDatabasePath); env != "" {
		cfg.Database.Path = env
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = Default().Database.Path
	}
	return cfg, nil
}
