package square

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds window and rendering settings.
type Config struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Title      string    `yaml:"title"`
	ClearColor []float32 `yaml:"clear_color"` // r, g, b, a
	VSync      bool      `yaml:"vsync"`
	LogLevel   string    `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "square",
		ClearColor: []float32{0, 0, 0, 1},
		VSync:      true,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if len(c.ClearColor) != 4 {
		return fmt.Errorf("clear_color needs 4 components, got %d", len(c.ClearColor))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Color returns the clear color.
func (c Config) Color() Color {
	if len(c.ClearColor) != 4 {
		return ColorBlack
	}
	return Color{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: c.ClearColor[3]}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
