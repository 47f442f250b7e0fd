package surfview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 720
	DefaultDragSpeed    = 0.005
	DefaultZoomStep     = 1.1
)

// Config holds the viewer settings that are not part of the mesh or its
// data: window geometry, background, and interaction tuning.
type Config struct {
	Title        string  `yaml:"title"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Background   RGB     `yaml:"background"`
	DragSpeed    float64 `yaml:"drag_speed"`
	ZoomStep     float64 `yaml:"zoom_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:        "surfview",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		Background:   RGB{0.0, 0.0, 0.0},
		DragSpeed:    DefaultDragSpeed,
		ZoomStep:     DefaultZoomStep,
	}
}

// LoadConfig reads a yaml config file, overlaying its values on the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.ZoomStep <= 1.0 {
		return fmt.Errorf("zoom step must be greater than 1, got %g", c.ZoomStep)
	}
	return nil
}
