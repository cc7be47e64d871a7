// Package config loads blueprint's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "BLUEPRINT_CONFIG"
	// EnvReducedMotion forces the reduced-motion preference ("1", "true").
	EnvReducedMotion = "BLUEPRINT_REDUCED_MOTION"
	// EnvLogFile overrides the log file.
	EnvLogFile = "BLUEPRINT_LOG_FILE"
)

// Config is the top-level configuration.
type Config struct {
	StartPage     string         `toml:"start_page"`
	ReducedMotion bool           `toml:"reduced_motion"`
	LogFile       string         `toml:"log_file"`  // empty disables logging
	LogLevel      string         `toml:"log_level"` // debug, info, warn, error
	Window        WindowConfig   `toml:"window"`
	Terminal      TerminalConfig `toml:"terminal"`
}

// WindowConfig tunes the floating-window desk. Values are layout units.
type WindowConfig struct {
	Margin             int  `toml:"margin"`
	BottomMargin       int  `toml:"bottom_margin"`
	SymmetricPadding   bool `toml:"symmetric_padding"`
	BaseZ              int  `toml:"base_z"`
	Breakpoint         int  `toml:"breakpoint"`
	StaggerMS          int  `toml:"stagger_ms"`
	MaxMeasureAttempts int  `toml:"max_measure_attempts"`
	NudgeStep          int  `toml:"nudge_step"` // keyboard move distance
}

// TerminalConfig maps terminal cells to layout units.
type TerminalConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	FrameMS    int `toml:"frame_ms"` // measurement retry interval
}

// Stagger returns the reveal stagger as a duration.
func (w WindowConfig) Stagger() time.Duration {
	return time.Duration(w.StaggerMS) * time.Millisecond
}

// Frame returns the measurement retry interval.
func (t TerminalConfig) Frame() time.Duration {
	return time.Duration(t.FrameMS) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StartPage: "home",
		LogLevel:  "info",
		Window: WindowConfig{
			Margin:             20,
			BottomMargin:       20,
			BaseZ:              20,
			Breakpoint:         768,
			StaggerMS:          520,
			MaxMeasureAttempts: 20,
			NudgeStep:          16,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			FrameMS:    16,
		},
	}
}

// DefaultPath returns $BLUEPRINT_CONFIG or <user config dir>/blueprint/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "blueprint", "config.toml")
}

// Load reads the config at path (DefaultPath if empty). A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// applyDefaults fills zero values a partial file left behind.
func (c *Config) applyDefaults() {
	d := Default()
	if c.StartPage == "" {
		c.StartPage = d.StartPage
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Window.Margin < 0 {
		c.Window.Margin = d.Window.Margin
	}
	if c.Window.BottomMargin < 0 {
		c.Window.BottomMargin = d.Window.BottomMargin
	}
	if c.Window.BaseZ <= 0 {
		c.Window.BaseZ = d.Window.BaseZ
	}
	if c.Window.Breakpoint <= 0 {
		c.Window.Breakpoint = d.Window.Breakpoint
	}
	if c.Window.StaggerMS < 0 {
		c.Window.StaggerMS = d.Window.StaggerMS
	}
	if c.Window.MaxMeasureAttempts <= 0 {
		c.Window.MaxMeasureAttempts = d.Window.MaxMeasureAttempts
	}
	if c.Window.NudgeStep <= 0 {
		c.Window.NudgeStep = d.Window.NudgeStep
	}
	if c.Terminal.CellWidth <= 0 {
		c.Terminal.CellWidth = d.Terminal.CellWidth
	}
	if c.Terminal.CellHeight <= 0 {
		c.Terminal.CellHeight = d.Terminal.CellHeight
	}
	if c.Terminal.FrameMS <= 0 {
		c.Terminal.FrameMS = d.Terminal.FrameMS
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvReducedMotion); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ReducedMotion = b
		}
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// Print writes cfg as TOML.
func Print(cfg *Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
