package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvReducedMotion, "")
	t.Setenv(EnvLogFile, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 520*time.Millisecond, cfg.Window.Stagger())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvReducedMotion, "")
	t.Setenv(EnvLogFile, "")
	path := writeConfig(t, `
start_page = "dynamite"

[window]
margin = 32
symmetric_padding = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dynamite", cfg.StartPage)
	assert.Equal(t, 32, cfg.Window.Margin)
	assert.True(t, cfg.Window.SymmetricPadding)
	assert.Equal(t, 768, cfg.Window.Breakpoint)
	assert.Equal(t, 8, cfg.Terminal.CellWidth)
	assert.Equal(t, 20, cfg.Window.MaxMeasureAttempts)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "start_page = [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvReducedMotion, "true")
	t.Setenv(EnvLogFile, "/tmp/blueprint.log")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.ReducedMotion)
	assert.Equal(t, "/tmp/blueprint.log", cfg.LogFile)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/blueprint.toml")
	assert.Equal(t, "/etc/blueprint.toml", DefaultPath())
}

func TestPrint_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(Default(), &buf))
	out := buf.String()
	assert.True(t, strings.Contains(out, "[window]"), out)
	assert.Contains(t, out, "stagger_ms = 520")

	path := writeConfig(t, out)
	t.Setenv(EnvReducedMotion, "")
	t.Setenv(EnvLogFile, "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
