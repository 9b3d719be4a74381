// Package config holds icongen configuration. Defaults reproduce the
// classic one-shot behavior: robot_icon.svg in, robot_icon_1024.png out,
// 1024x1024. A yaml file and a couple of env vars can override the paths;
// the converter fallback order itself is fixed and not configurable.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all icongen configuration.
type Config struct {
	// Input is the source SVG path.
	Input string `yaml:"input"`

	// Output is the destination PNG path for one-shot conversion.
	Output string `yaml:"output"`

	// Size is the square output dimension for one-shot conversion.
	Size int `yaml:"size"`

	// Sizes are the square dimensions rendered by the iconset command.
	Sizes []int `yaml:"sizes"`

	// ToolTimeout bounds each external converter invocation, e.g. "30s".
	ToolTimeout string `yaml:"tool_timeout"`
}

// DefaultConfig returns the built-in defaults. The iconset sizes cover the
// usual app-icon catalog ladder up to the 1024 marketing image.
func DefaultConfig() *Config {
	return &Config{
		Input:       "robot_icon.svg",
		Output:      "robot_icon_1024.png",
		Size:        1024,
		Sizes:       []int{16, 32, 64, 128, 256, 512, 1024},
		ToolTimeout: "30s",
	}
}

// Load reads a yaml config from path, layered over the defaults.
// Env overrides apply last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnvOverrides applies ICONGEN_INPUT and ICONGEN_OUTPUT when set.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ICONGEN_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("ICONGEN_OUTPUT"); v != "" {
		c.Output = v
	}
}

// Validate checks the config for values the converters cannot work with.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("iconset sizes must be positive, got %d", s)
		}
	}
	if _, err := time.ParseDuration(c.ToolTimeout); err != nil {
		return fmt.Errorf("invalid tool_timeout %q: %w", c.ToolTimeout, err)
	}
	return nil
}

// ToolTimeoutDuration returns the parsed tool timeout. Validate must have
// accepted the config first; an unparsable value falls back to 30s.
func (c *Config) ToolTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ToolTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
