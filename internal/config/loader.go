package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile makes the loader read the given TOML file instead of the default location
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile decodes the config file over the defaults. A missing default file is not an error;
// a missing explicitly requested file is.
func (l *Loader) loadFile() error {
	path := l.filePath
	explicit := path != ""
	if !explicit {
		path = os.Getenv("BELT_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultConfigFile()
	}
	if path == "" {
		return nil
	}

	if _, err := toml.DecodeFile(path, l.config); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Field: "config_file", Message: fmt.Sprintf("cannot read %s: %v", path, err)}
	}
	return nil
}

// DefaultConfigFile returns ~/.belt/config.toml, or "" when the home directory is unknown
func DefaultConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".belt", "config.toml")
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DataDir  *string
	Backend  *string
	Plan     *string
	Timezone *string
	BarWidth *int
	Verbose  *bool
	LogLevel *string
	NoColor  *bool
}

// BindFlags registers the global override flags on fs
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (overrides BELT_CONFIG)")
	fs.String("data-dir", "", "Snapshot directory (overrides BELT_DATA_DIR)")
	fs.String("backend", "", "Snapshot backend: json or sqlite (overrides BELT_STORAGE_BACKEND)")
	fs.String("plan", "", "Day plan file, .yaml or .toml (overrides BELT_PLAN)")
	fs.String("timezone", "", "IANA time zone used for dates and the current slot (overrides BELT_TIMEZONE)")
	fs.Int("bar-width", 0, "Progress bar width (overrides BELT_DISPLAY_BAR_WIDTH)")
	fs.Bool("verbose", false, "Enable verbose output (overrides BELT_APP_VERBOSE)")
	fs.String("log-level", "", "Log level: debug, info, warn, error (overrides BELT_LOG_LEVEL)")
	fs.Bool("no-color", false, "Disable colored output")
}

// OverridesFromFlags collects the flags that were explicitly set on fs
func OverridesFromFlags(fs *pflag.FlagSet) *ConfigOverrides {
	o := &ConfigOverrides{}
	if fs.Changed("data-dir") {
		v, _ := fs.GetString("data-dir")
		o.DataDir = &v
	}
	if fs.Changed("backend") {
		v, _ := fs.GetString("backend")
		o.Backend = &v
	}
	if fs.Changed("plan") {
		v, _ := fs.GetString("plan")
		o.Plan = &v
	}
	if fs.Changed("timezone") {
		v, _ := fs.GetString("timezone")
		o.Timezone = &v
	}
	if fs.Changed("bar-width") {
		v, _ := fs.GetInt("bar-width")
		o.BarWidth = &v
	}
	if fs.Changed("verbose") {
		v, _ := fs.GetBool("verbose")
		o.Verbose = &v
	}
	if fs.Changed("log-level") {
		v, _ := fs.GetString("log-level")
		o.LogLevel = &v
	}
	if fs.Changed("no-color") {
		v, _ := fs.GetBool("no-color")
		o.NoColor = &v
	}
	return o
}

// Apply applies the overrides to config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DataDir != nil {
		config.Storage.Dir = *o.DataDir
	}
	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.Plan != nil {
		config.Plan.Path = *o.Plan
	}
	if o.Timezone != nil {
		config.Time.Zone = *o.Timezone
	}
	if o.BarWidth != nil {
		config.Display.BarWidth = *o.BarWidth
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		config.Application.LogLevel = *o.LogLevel
	}
	if o.NoColor != nil && *o.NoColor {
		config.Display.Color = false
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
