package config

import "blueprint/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	LogsDir    string          `yaml:"logs_dir" json:"logs_dir,omitempty"`     // dated log file, debug mode only
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - true = debug level everywhere
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// Options converts the config into logging.Initialize options.
func (c LoggingConfig) Options() logging.Options {
	return logging.Options{
		Level:      c.Level,
		JSON:       c.Format == "json",
		DebugMode:  c.DebugMode,
		Categories: c.Categories,
		LogsDir:    c.LogsDir,
	}
}
