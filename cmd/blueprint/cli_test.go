package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint/internal/bodygraph"
	"blueprint/internal/config"
)

// run executes the CLI with a config path that does not exist, so defaults
// apply, and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvEphemerisCmd, "")
	t.Setenv(config.EnvDebug, "")

	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCmd_Text(t *testing.T) {
	out, err := run(t, "classify", "--chart", "testdata/chart_1990.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Projector · Splenic · 2/4 (Hermit/Opportunist)")
	assert.Contains(t, out, "Split")
	assert.Contains(t, out, "Right Angle Cross (12/11 | 36/6)")
	assert.Contains(t, out, "24-61")
	assert.Contains(t, out, "Awareness")
	assert.Contains(t, out, "sun 12.2")
	assert.NotContains(t, out, "approximated")
}

func TestClassifyCmd_JSON(t *testing.T) {
	out, err := run(t, "classify", "--chart", "testdata/chart_1990.yaml", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		ID     string `json:"id"`
		Result struct {
			Type     string `json:"type"`
			Profile  string `json:"profile"`
			Metadata struct {
				Fallback bool `json:"usedFallbackDesignPositions"`
			} `json:"metadata"`
		} `json:"result"`
		DesignSource string `json:"designSource"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.NotEmpty(t, decoded.ID)
	assert.Equal(t, "Projector", decoded.Result.Type)
	assert.Equal(t, "2/4 (Hermit/Opportunist)", decoded.Result.Profile)
	assert.False(t, decoded.Result.Metadata.Fallback)
	assert.Equal(t, "request", decoded.DesignSource)
}

func TestClassifyCmd_DesignFromFallback(t *testing.T) {
	out, err := run(t, "classify", "--chart", "testdata/chart_birth_only.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "design positions approximated (linear)")
}

func TestClassifyCmd_Errors(t *testing.T) {
	_, err := run(t, "classify")
	assert.Error(t, err, "--chart is required")

	_, err = run(t, "classify", "--chart", "testdata/chart_1990.yaml", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("birth: yesterday\n"), 0o644))
	_, err = run(t, "classify", "--chart", bad)
	assert.ErrorContains(t, err, "birth")

	noBirth := filepath.Join(dir, "nobirth.yaml")
	require.NoError(t, os.WriteFile(noBirth, []byte("personality: {sun: 1}\n"), 0o644))
	_, err = run(t, "classify", "--chart", noBirth)
	assert.ErrorContains(t, err, "birth is required")

	planet := filepath.Join(dir, "planet.yaml")
	require.NoError(t, os.WriteFile(planet, []byte("birth: \"2000-01-01T00:00:00Z\"\ndesign: {chiron: 4}\n"), 0o644))
	_, err = run(t, "classify", "--chart", planet)
	assert.ErrorContains(t, err, "design")
}

func TestLoadChart_OmittedMapsStayNil(t *testing.T) {
	req, err := loadChart("testdata/chart_birth_only.yaml")
	require.NoError(t, err)
	assert.Nil(t, req.Design)
	assert.Len(t, req.Personality, bodygraph.PlanetCount)
	assert.Equal(t, 1990, req.Birth.Year())
}

func TestDesignTimeCmd(t *testing.T) {
	out, err := run(t, "design-time", "--birth", "1990-06-15T08:00:00-04:00")
	require.NoError(t, err)
	assert.Contains(t, out, "1990-03-17T")
	assert.Contains(t, out, "89.64")

	_, err = run(t, "design-time", "--birth", "June 15")
	assert.Error(t, err)

	out, err = run(t, "design-time", "--birth", "1990-06-15T08:00:00-04:00", "--format", "json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 89.647, decoded["offsetDays"], 0.001)
	assert.Contains(t, decoded["designTime"], "1990-03-17T")

	_, err = run(t, "design-time", "--birth", "1990-06-15T08:00:00-04:00", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestGateCmd(t *testing.T) {
	out, err := run(t, "gate", "84.02")
	require.NoError(t, err)
	assert.Contains(t, out, "12.2 Caution")
	assert.Contains(t, out, "Gemini 24°01'")
	assert.Contains(t, out, "throat")
	assert.Contains(t, out, "Line midpoint")

	out, err = run(t, "gate", "--", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "359.0000°")

	_, err = run(t, "gate", "north")
	assert.Error(t, err)
}

func TestChannelsCmd(t *testing.T) {
	out, err := run(t, "channels")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, bodygraph.ChannelCount)
	assert.Contains(t, lines[0], "1-8")
	assert.Contains(t, lines[0], "Inspiration")

	out, err = run(t, "channels", "--center", "head")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)

	_, err = run(t, "channels", "--center", "spine")
	assert.Error(t, err)
}

func TestRoot_InvalidEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	t.Setenv(config.EnvDebug, "sometimes")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfgPath, "channels"})
	assert.Error(t, root.Execute())
}

func TestLoadChart_NullLongitudeIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	chart := "birth: \"1990-06-15T08:00:00-04:00\"\npersonality:\n  sun: 84.02\n  pluto: ~\ndesign:\n  sun: 356.3\n  moon: null\n"
	require.NoError(t, os.WriteFile(path, []byte(chart), 0o644))

	req, err := loadChart(path)
	require.NoError(t, err)
	assert.Equal(t, bodygraph.Longitudes{bodygraph.Sun: 84.02}, req.Personality)
	assert.Equal(t, bodygraph.Longitudes{bodygraph.Sun: 356.3}, req.Design)
	_, ok := req.Personality[bodygraph.Pluto]
	assert.False(t, ok)
}

func TestGatesCmd(t *testing.T) {
	out, err := run(t, "gates")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 64)
	assert.True(t, strings.HasPrefix(lines[0], "41"), lines[0])
	assert.Contains(t, lines[0], "302.0000°")
	assert.Contains(t, lines[0], "root")
}

func TestConfigInitCmd(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(config.EnvEphemerisCmd, "")
	t.Setenv(config.EnvDebug, "")
	path := filepath.Join(t.TempDir(), "conf", "blueprint.yaml")

	execute := func(args ...string) (string, error) {
		root := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(append([]string{"--config", path, "config", "init"}, args...))
		err := root.Execute()
		return out.String(), err
	}

	out, err := execute()
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	defaults := config.DefaultConfig()
	assert.Equal(t, defaults.Ephemeris.Timeout, loaded.Ephemeris.Timeout)
	assert.Equal(t, defaults.Output.Format, loaded.Output.Format)
	assert.True(t, loaded.Ephemeris.Fallback)

	_, err = execute()
	assert.ErrorContains(t, err, "already exists")

	_, err = execute("--force")
	assert.NoError(t, err)
}
