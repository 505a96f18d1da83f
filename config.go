package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

type Config struct {
	CellWidth       int           `yaml:"cell_width"`
	CellHeight      int           `yaml:"cell_height"`
	CornerRadius    float64       `yaml:"corner_radius"`
	HoverTolerance  float64       `yaml:"hover_tolerance"`
	StrokeWidth     float64       `yaml:"stroke_width"`
	LineColor       string        `yaml:"line_color"`
	HoverColor      string        `yaml:"hover_color"`
	BackgroundColor string        `yaml:"background_color"`
	FrameInterval   time.Duration `yaml:"frame_interval"`
	DebugLog        string        `yaml:"debug_log,omitempty"`
}

type palette struct {
	Line       color.Color
	Hover      color.Color
	Background color.Color
}

func defaultConfig() *Config {
	return &Config{
		CellWidth:       defaultCellWidth,
		CellHeight:      defaultCellHeight,
		CornerRadius:    defaultCornerRadius,
		HoverTolerance:  defaultHoverTolerance,
		StrokeWidth:     defaultStrokeWidth,
		LineColor:       defaultLineColor,
		HoverColor:      defaultHoverColor,
		BackgroundColor: defaultBackgroundColor,
		FrameInterval:   defaultFrameInterval,
	}
}

// loadConfig reads the first config file found, layered over the defaults.
// No file at all is not an error; it returns the defaults and an empty path.
func loadConfig() (*Config, string, error) {
	config := defaultConfig()
	path := findConfigPath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("read config %s: %w", path, err)
		}
		if config, err = parseConfig(data); err != nil {
			return nil, path, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if env := os.Getenv("ELBOW_DEBUG"); env != "" && config.DebugLog == "" {
		config.DebugLog = env
	}
	return config, path, nil
}

// findConfigPath checks, in order, $ELBOW_CONFIG, ./elbow.yaml and
// ~/.config/elbow/config.yaml.
func findConfigPath() string {
	if env := os.Getenv("ELBOW_CONFIG"); env != "" {
		return env
	}
	candidates := []string{"elbow.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".config", "elbow", "config.yaml"))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func parseConfig(data []byte) (*Config, error) {
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight))
	}
	if c.CornerRadius <= 0 {
		errs = append(errs, fmt.Errorf("corner_radius must be positive, got %v", c.CornerRadius))
	}
	if c.HoverTolerance <= 0 {
		errs = append(errs, fmt.Errorf("hover_tolerance must be positive, got %v", c.HoverTolerance))
	}
	if c.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width must be positive, got %v", c.StrokeWidth))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame_interval must be positive, got %v", c.FrameInterval))
	}
	if _, err := c.palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) Geometry() Geometry {
	return Geometry{
		CornerRadius:   c.CornerRadius,
		HoverTolerance: c.HoverTolerance,
	}
}

func (c *Config) palette() (palette, error) {
	var p palette
	var err error
	if p.Line, err = parseColor("line_color", c.LineColor); err != nil {
		return palette{}, err
	}
	if p.Hover, err = parseColor("hover_color", c.HoverColor); err != nil {
		return palette{}, err
	}
	if p.Background, err = parseColor("background_color", c.BackgroundColor); err != nil {
		return palette{}, err
	}
	return p, nil
}

func parseColor(field, value string) (color.Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", field, value, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
