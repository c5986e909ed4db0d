package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDepth       = 50
	DefaultEpsilon     = 1e-3
	DefaultStrokeWidth = 0.001
	DefaultMargin      = 0.2
	DefaultOutput      = "limitset.svg"
)

// Config holds the render settings. Trace parameters stay strings in
// strconv.ParseComplex syntax ("2", "1.91+0.05i") so they round-trip
// through yaml and flags unchanged.
type Config struct {
	TraceA      string  `yaml:"trace_a"`
	TraceB      string  `yaml:"trace_b"`
	Depth       int     `yaml:"depth"`
	Epsilon     float64 `yaml:"epsilon"`
	Output      string  `yaml:"output"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Margin      float64 `yaml:"margin"`
}

func DefaultConfig() *Config {
	return &Config{
		TraceA:      "2",
		TraceB:      "2",
		Depth:       DefaultDepth,
		Epsilon:     DefaultEpsilon,
		Output:      DefaultOutput,
		StrokeWidth: DefaultStrokeWidth,
		Margin:      DefaultMargin,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Traces parses the two trace parameters.
func (c *Config) Traces() (ta, tb complex128, err error) {
	ta, err = strconv.ParseComplex(c.TraceA, 128)
	if err != nil {
		return 0, 0, fmt.Errorf("trace_a %q: %w", c.TraceA, err)
	}
	tb, err = strconv.ParseComplex(c.TraceB, 128)
	if err != nil {
		return 0, 0, fmt.Errorf("trace_b %q: %w", c.TraceB, err)
	}
	return ta, tb, nil
}

func (c *Config) Validate() error {
	if _, _, err := c.Traces(); err != nil {
		return err
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth %d is negative", c.Depth)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon %g is negative", c.Epsilon)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width %g must be positive", c.StrokeWidth)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin %g is negative", c.Margin)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	return nil
}
