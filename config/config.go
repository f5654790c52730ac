// Package config loads the window/display parameters read once at start-up.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the display configuration is looked up when no path is given.
const DefaultPath = "resources/display_config.yaml"

const (
	DefaultTitle  = "flatquad"
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultTPS    = 60
)

// DisplayConfig describes the window. It is immutable once loaded.
type DisplayConfig struct {
	Title         string  `yaml:"title"`
	Dimensions    [2]int  `yaml:"dimensions,flow"`
	MinDimensions *[2]int `yaml:"min_dimensions,omitempty,flow"`
	MaxDimensions *[2]int `yaml:"max_dimensions,omitempty,flow"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	Resizable     bool    `yaml:"resizable"`
	Decorations   *bool   `yaml:"decorations,omitempty"` // pointer to distinguish unset vs false
	AlwaysOnTop   bool    `yaml:"always_on_top"`
	Multisampling int     `yaml:"multisampling"`
	TPS           int     `yaml:"tps"`
}

// Default returns the configuration used for omitted fields.
func Default() DisplayConfig {
	return DisplayConfig{
		Title:         DefaultTitle,
		Dimensions:    [2]int{DefaultWidth, DefaultHeight},
		VSync:         true,
		Multisampling: 1,
		TPS:           DefaultTPS,
	}
}

func (c DisplayConfig) Width() int  { return c.Dimensions[0] }
func (c DisplayConfig) Height() int { return c.Dimensions[1] }

// Decorated reports whether the window has a title bar and border.
func (c DisplayConfig) Decorated() bool {
	return c.Decorations == nil || *c.Decorations
}

// normalize fills an empty title. Other omitted fields keep the Default values
// Parse decodes over.
func (c *DisplayConfig) normalize() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

var (
	errDimensions    = errors.New("dimensions must be positive")
	errMinMax        = errors.New("min_dimensions exceed max_dimensions")
	errMultisampling = errors.New("multisampling must be at least 1")
	errTPS           = errors.New("tps must be positive")
)

func (c DisplayConfig) validate() error {
	if c.Dimensions[0] <= 0 || c.Dimensions[1] <= 0 {
		return fmt.Errorf("%w: %dx%d", errDimensions, c.Dimensions[0], c.Dimensions[1])
	}
	for _, d := range []*[2]int{c.MinDimensions, c.MaxDimensions} {
		if d != nil && (d[0] <= 0 || d[1] <= 0) {
			return fmt.Errorf("%w: %dx%d", errDimensions, d[0], d[1])
		}
	}
	if c.MinDimensions != nil && c.MaxDimensions != nil &&
		(c.MinDimensions[0] > c.MaxDimensions[0] || c.MinDimensions[1] > c.MaxDimensions[1]) {
		return errMinMax
	}
	if c.Multisampling < 1 {
		return errMultisampling
	}
	if c.TPS <= 0 {
		return errTPS
	}
	return nil
}

// LoadError reports a display configuration that could not be used. It is fatal:
// the program never starts its frame loop.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load display config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates the display configuration at path. Omitted fields take
// their defaults; unknown fields are rejected.
func Load(path string) (DisplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DisplayConfig{}, &LoadError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return DisplayConfig{}, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a YAML document into a validated DisplayConfig.
func Parse(data []byte) (DisplayConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return DisplayConfig{}, fmt.Errorf("parse: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return DisplayConfig{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating or truncating path.
func Save(path string, cfg DisplayConfig) error {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
