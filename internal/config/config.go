package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"daybelt/internal/logging"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for daybelt
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Time        TimeConfig        `toml:"time"`
	Plan        PlanConfig        `toml:"plan"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds snapshot storage configuration
type StorageConfig struct {
	Dir            string `toml:"dir" env:"BELT_DATA_DIR"`
	Backend        string `toml:"backend" env:"BELT_STORAGE_BACKEND"`
	DBFilename     string `toml:"db_filename" env:"BELT_DB_FILENAME"`
	DirPermissions uint32 `toml:"dir_permissions" env:"BELT_DIR_PERMISSIONS"`
}

// TimeConfig holds the pinned time zone
type TimeConfig struct {
	Zone string `toml:"zone" env:"BELT_TIMEZONE"`
}

// PlanConfig points at the day plan definition
type PlanConfig struct {
	Path           string `toml:"path" env:"BELT_PLAN"`
	LabelMaxLength int    `toml:"label_max_length" env:"BELT_PLAN_LABEL_MAX"`
}

// DisplayConfig holds rendering configuration
type DisplayConfig struct {
	BarWidth       int    `toml:"bar_width" env:"BELT_DISPLAY_BAR_WIDTH"`
	ExportFilename string `toml:"export_filename" env:"BELT_EXPORT_FILENAME"`
	Color          bool   `toml:"color" env:"BELT_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout   time.Duration `toml:"timeout" env:"BELT_APP_TIMEOUT"`
	Verbose   bool          `toml:"verbose" env:"BELT_APP_VERBOSE"`
	LogLevel  string        `toml:"log_level" env:"BELT_LOG_LEVEL"`
	LogFormat string        `toml:"log_format" env:"BELT_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".belt"),
			Backend:        BackendJSON,
			DBFilename:     "belt.db",
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			Zone: "UTC",
		},
		Plan: PlanConfig{
			LabelMaxLength: 200,
		},
		Display: DisplayConfig{
			BarWidth:       30,
			ExportFilename: "schedule.csv",
			Color:          true,
		},
		Application: ApplicationConfig{
			Timeout:   30 * time.Second,
			LogLevel:  "warn",
			LogFormat: "text",
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// Location resolves the configured time zone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Time.Zone)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("BELT_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if backend := os.Getenv("BELT_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if filename := os.Getenv("BELT_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if perms := os.Getenv("BELT_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Time configuration
	if zone := os.Getenv("BELT_TIMEZONE"); zone != "" {
		c.Time.Zone = zone
	}

	// Plan configuration
	if path := os.Getenv("BELT_PLAN"); path != "" {
		c.Plan.Path = path
	}
	if maxLen := os.Getenv("BELT_PLAN_LABEL_MAX"); maxLen != "" {
		c.Plan.LabelMaxLength = ParseIntWithFallback(maxLen, c.Plan.LabelMaxLength)
	}

	// Display configuration
	if width := os.Getenv("BELT_DISPLAY_BAR_WIDTH"); width != "" {
		c.Display.BarWidth = ParseIntWithFallback(width, c.Display.BarWidth)
	}
	if name := os.Getenv("BELT_EXPORT_FILENAME"); name != "" {
		c.Display.ExportFilename = name
	}
	if color := os.Getenv("BELT_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Display.Color = false
	}

	// Application configuration
	if timeout := os.Getenv("BELT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("BELT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if level := os.Getenv("BELT_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}
	if format := os.Getenv("BELT_LOG_FORMAT"); format != "" {
		c.Application.LogFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	switch c.Storage.Backend {
	case BackendJSON:
	case BackendSQLite:
		if c.Storage.DBFilename == "" {
			return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of json, sqlite"}
	}

	if c.Time.Zone == "" {
		return &ConfigError{Field: "time.zone", Message: "time zone cannot be empty"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "time.zone", Message: "unknown time zone " + strconv.Quote(c.Time.Zone)}
	}

	if c.Plan.LabelMaxLength < 1 {
		return &ConfigError{Field: "plan.label_max_length", Message: "label maximum length must be at least 1"}
	}

	if c.Display.BarWidth < 2 {
		return &ConfigError{Field: "display.bar_width", Message: "bar width must be at least 2"}
	}
	if c.Display.ExportFilename == "" {
		return &ConfigError{Field: "display.export_filename", Message: "export filename cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if !logging.ValidLevel(c.Application.LogLevel) {
		return &ConfigError{Field: "application.log_level", Message: "log level must be one of debug, info, warn, error"}
	}
	if !logging.ValidFormat(c.Application.LogFormat) {
		return &ConfigError{Field: "application.log_format", Message: "log format must be one of text, json, logfmt"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
