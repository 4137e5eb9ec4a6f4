package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all blueprint configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Ephemeris provider used when a chart omits longitudes
	Ephemeris EphemerisConfig `yaml:"ephemeris"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Datalog cross-check of every classification
	Audit AuditConfig `yaml:"audit"`

	// CLI output
	Output OutputConfig `yaml:"output"`
}

// EphemerisConfig configures the external ephemeris program.
type EphemerisConfig struct {
	// Command is run with Args followed by the instant in RFC 3339 UTC.
	// Empty means no external provider.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// Timeout bounds one provider call
	Timeout string `yaml:"timeout"`

	// Fallback enables the linear approximation for design positions
	Fallback bool `yaml:"fallback"`

	// MaxOutputBytes caps what is read from the program's stdout
	MaxOutputBytes int64 `yaml:"max_output_bytes"`
}

// AuditConfig toggles the Datalog audit.
type AuditConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig configures CLI rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "blueprint",
		Version: "0.3.0",

		Ephemeris: EphemerisConfig{
			Timeout:        "10s",
			Fallback:       true,
			MaxOutputBytes: 64 * 1024,
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},

		Audit: AuditConfig{
			Enabled: false,
		},

		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if the file doesn't exist
		data = nil
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Environment variables read by applyEnvOverrides.
const (
	EnvEphemerisCmd     = "BLUEPRINT_EPHEMERIS_CMD"
	EnvEphemerisTimeout = "BLUEPRINT_EPHEMERIS_TIMEOUT"
	EnvLogLevel         = "BLUEPRINT_LOG_LEVEL"
	EnvDebug            = "BLUEPRINT_DEBUG"
)

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	// Command line split on whitespace: program then arguments
	if cmd := strings.Fields(os.Getenv(EnvEphemerisCmd)); len(cmd) > 0 {
		c.Ephemeris.Command = cmd[0]
		c.Ephemeris.Args = cmd[1:]
	}
	if timeout := os.Getenv(EnvEphemerisTimeout); timeout != "" {
		c.Ephemeris.Timeout = timeout
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if debug := os.Getenv(EnvDebug); debug != "" {
		on, err := strconv.ParseBool(debug)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvDebug, debug, err)
		}
		c.Logging.DebugMode = on
	}
	return nil
}

// GetEphemerisTimeout returns the provider timeout as a duration.
func (c *Config) GetEphemerisTimeout() time.Duration {
	d, err := time.ParseDuration(c.Ephemeris.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// HasEphemerisCommand returns whether an external provider is configured.
func (c *Config) HasEphemerisCommand() bool {
	return c.Ephemeris.Command != ""
}

// ValidOutputFormats lists the CLI output formats.
var ValidOutputFormats = []string{"json", "text"}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Ephemeris.Timeout != "" {
		d, err := time.ParseDuration(c.Ephemeris.Timeout)
		if err != nil {
			return fmt.Errorf("invalid ephemeris timeout %q: %w", c.Ephemeris.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("ephemeris timeout must be positive, got %s", d)
		}
	}
	if c.Ephemeris.MaxOutputBytes < 0 {
		return fmt.Errorf("ephemeris max_output_bytes must not be negative")
	}
	if !contains(ValidOutputFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, ValidOutputFormats)
	}
	if c.Logging.Level != "" && !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Logging.Format != "" && !contains(ValidOutputFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidOutputFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
