// Package config loads and persists the application configuration.
//
// Configuration lives at ~/.ecotrack/config.yaml (or $ECOTRACK_HOME), with
// ECOTRACK_* environment variables layered on top and CLI flags on top of
// that. A missing config file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Storage backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the application configuration.
type Config struct {
	// User is the default user tracked when --user is not given.
	User string `yaml:"user" env:"ECOTRACK_USER"`

	// DataDir is the root of the file storage backend.
	DataDir string `yaml:"data_dir" env:"ECOTRACK_DATA_DIR"`

	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects and parameterizes the blob store backend.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend" env:"ECOTRACK_STORAGE_BACKEND"`

	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `yaml:"sqlite_path" env:"ECOTRACK_SQLITE_PATH"`
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level" env:"ECOTRACK_LOG_LEVEL"`

	// File, when set, receives a JSON copy of every log event.
	File string `yaml:"file" env:"ECOTRACK_LOG_FILE"`
}

// Dir returns the ecotrack configuration directory: $ECOTRACK_HOME when set,
// otherwise ~/.ecotrack.
func Dir() (string, error) {
	if home := os.Getenv("ECOTRACK_HOME"); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ecotrack"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// New returns the default configuration. Paths are rooted in the config
// directory; when that cannot be determined they stay relative to the
// working directory.
func New() *Config {
	cfg := &Config{
		User: "default",
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	dir, err := Dir()
	if err != nil {
		dir = ".ecotrack"
	}
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.Storage.SQLitePath = filepath.Join(dir, "ecotrack.db")

	return cfg
}

// Load builds the effective configuration: defaults, overlaid with the YAML
// file at path if it exists, overlaid with ECOTRACK_* environment variables.
// A missing file is fine; an unreadable or invalid one is an error.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run, defaults apply.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML to path, creating the parent
// directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	return nil
}

// Validate checks the configuration for values that would fail later in
// surprising places.
func (c *Config) Validate() error {
	if c.User == "" {
		return errors.New("user must not be empty")
	}

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q, use %q or %q",
			c.Storage.Backend, BackendFile, BackendSQLite)
	}

	if c.Storage.Backend == BackendSQLite && c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path must be set for the sqlite backend")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}

	return nil
}
