// Package config loads canvas settings from ~/.canvas/config.yaml with
// CANVAS_* environment overrides, and watches the file for live reload.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/zhubert/canvas/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. CANVAS_ZOOM_STEP=0.1.
const EnvPrefix = "CANVAS_"

// ZoomConfig bounds the canvas scale.
type ZoomConfig struct {
	Min  float64 `yaml:"min" koanf:"min"`
	Max  float64 `yaml:"max" koanf:"max"`
	Step float64 `yaml:"step" koanf:"step"`
}

// SidebarConfig bounds the sidebar width in logical pixels.
type SidebarConfig struct {
	Min     float64 `yaml:"min" koanf:"min"`
	Max     float64 `yaml:"max" koanf:"max"`
	Default float64 `yaml:"default" koanf:"default"`
}

// CellConfig is the size of one terminal cell in logical pixels.
type CellConfig struct {
	Width  float64 `yaml:"width" koanf:"width"`
	Height float64 `yaml:"height" koanf:"height"`
}

// PanelConfig sets the size of new panels in logical pixels.
type PanelConfig struct {
	Width     float64 `yaml:"width" koanf:"width"`
	Height    float64 `yaml:"height" koanf:"height"`
	MinWidth  float64 `yaml:"min_width" koanf:"min_width"`
	MinHeight float64 `yaml:"min_height" koanf:"min_height"`
}

// Config holds the application configuration
type Config struct {
	Theme     string        `yaml:"theme" koanf:"theme"`
	Modifier  string        `yaml:"modifier" koanf:"modifier"` // ctrl, alt or shift
	Workspace string        `yaml:"workspace,omitempty" koanf:"workspace"`
	Zoom      ZoomConfig    `yaml:"zoom" koanf:"zoom"`
	Sidebar   SidebarConfig `yaml:"sidebar" koanf:"sidebar"`
	Cell      CellConfig    `yaml:"cell" koanf:"cell"`
	Panel     PanelConfig   `yaml:"panel" koanf:"panel"`

	mu       sync.RWMutex
	filePath string
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Theme:    "dark-purple",
		Modifier: "ctrl",
		Zoom:     ZoomConfig{Min: 0.2, Max: 3.0, Step: 0.05},
		Sidebar:  SidebarConfig{Min: 200, Max: 480, Default: 260},
		Cell:     CellConfig{Width: 8, Height: 16},
		Panel:    PanelConfig{Width: 700, Height: 500, MinWidth: 300, MinHeight: 300},
	}
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".canvas"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

var sections = map[string]bool{"zoom": true, "sidebar": true, "cell": true, "panel": true}

// envKey maps CANVAS_PANEL_MIN_WIDTH to panel.min_width.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if head, rest, ok := strings.Cut(key, "_"); ok && sections[head] {
		return head + "." + rest
	}
	return key
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()
	cfg.filePath = path

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validModifiers = map[string]bool{"ctrl": true, "alt": true, "shift": true}

// Validate checks that every bound is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !validModifiers[c.Modifier] {
		return errors.ConfigInvalid("modifier must be one of ctrl, alt, shift, got " + c.Modifier)
	}
	if c.Zoom.Min <= 0 || c.Zoom.Min > 1 || c.Zoom.Max < 1 {
		return errors.ConfigInvalid("zoom range must satisfy 0 < min <= 1 <= max")
	}
	if c.Zoom.Step <= 0 || c.Zoom.Step > c.Zoom.Max-c.Zoom.Min {
		return errors.ConfigInvalid("zoom step must be positive and fit inside the zoom range")
	}
	if c.Sidebar.Min <= 0 || c.Sidebar.Min > c.Sidebar.Max {
		return errors.ConfigInvalid("sidebar range must satisfy 0 < min <= max")
	}
	if c.Sidebar.Default < c.Sidebar.Min || c.Sidebar.Default > c.Sidebar.Max {
		return errors.ConfigInvalid("sidebar default must lie within min and max")
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return errors.ConfigInvalid("cell size must be positive")
	}
	if c.Panel.MinWidth <= 0 || c.Panel.MinHeight <= 0 {
		return errors.ConfigInvalid("panel minimum size must be positive")
	}
	if c.Panel.Width < c.Panel.MinWidth || c.Panel.Height < c.Panel.MinHeight {
		return errors.ConfigInvalid("panel size must not be below the minimum")
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config as YAML to the file it was loaded from.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", errors.E("no config path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the configured theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name.
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}
