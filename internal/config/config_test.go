package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEphemerisCmd, EnvEphemerisTimeout, EnvLogLevel, EnvDebug} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "blueprint", cfg.Name)
	assert.True(t, cfg.Ephemeris.Fallback)
	assert.False(t, cfg.HasEphemerisCommand())
	assert.Equal(t, 10*time.Second, cfg.GetEphemerisTimeout())
	assert.Equal(t, "text", cfg.Output.Format)
	require.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "blueprint.yaml")

	cfg := DefaultConfig()
	cfg.Ephemeris.Command = "python3"
	cfg.Ephemeris.Args = []string{"scripts/swe.py", "--geocentric"}
	cfg.Ephemeris.Timeout = "3s"
	cfg.Audit.Enabled = true
	cfg.Output.Format = "json"
	cfg.Logging.Categories = map[string]bool{"audit": false}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 3*time.Second, loaded.GetEphemerisTimeout())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audit:\n  enabled: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Audit.Enabled)
	assert.True(t, cfg.Ephemeris.Fallback)
	assert.Equal(t, "10s", cfg.Ephemeris.Timeout)
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ephemeris: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad timeout", func(c *Config) { c.Ephemeris.Timeout = "soon" }, "invalid ephemeris timeout"},
		{"zero timeout", func(c *Config) { c.Ephemeris.Timeout = "0s" }, "must be positive"},
		{"negative output cap", func(c *Config) { c.Ephemeris.MaxOutputBytes = -1 }, "max_output_bytes"},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }, "invalid output format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetEphemerisTimeout_Fallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ephemeris.Timeout = "garbage"
	assert.Equal(t, 10*time.Second, cfg.GetEphemerisTimeout())
	cfg.Ephemeris.Timeout = "-1s"
	assert.Equal(t, 10*time.Second, cfg.GetEphemerisTimeout())
}

func TestLoggingConfig_Options(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json", DebugMode: true, LogsDir: "logs", Categories: map[string]bool{"cli": false}}
	o := lc.Options()
	assert.Equal(t, "debug", o.Level)
	assert.True(t, o.JSON)
	assert.True(t, o.DebugMode)
	assert.Equal(t, "logs", o.LogsDir)
	assert.Equal(t, map[string]bool{"cli": false}, o.Categories)
}
