// Package config loads and validates the skillchart configuration
// from the .skillchart.yaml file, environment and bound CLI flags.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full skillchart configuration
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ProjectConfig contains project-level settings
type ProjectConfig struct {
	Name string `mapstructure:"name"`
}

// DatasetConfig points at the input table
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// ChartConfig contains layout and axis settings
type ChartConfig struct {
	Title     string `mapstructure:"title"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Reference string `mapstructure:"reference"` // YYYY-MM-DD; empty means today
	TickStart int    `mapstructure:"tick_start"`
	TickEnd   int    `mapstructure:"tick_end"`
	TickStep  int    `mapstructure:"tick_step"`
}

// OutputConfig contains artifact settings
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults
	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "skills.csv"
	}

	if cfg.Chart.Title == "" {
		cfg.Chart.Title = "Skills Timeline"
	}

	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 1200
	}

	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 800
	}

	if cfg.Chart.TickStart == 0 {
		cfg.Chart.TickStart = 1998
	}

	if cfg.Chart.TickEnd == 0 {
		cfg.Chart.TickEnd = 2025
	}

	if cfg.Chart.TickStep == 0 {
		cfg.Chart.TickStep = 3
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "public"
	}

	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"svg", "html"}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Chart.Width <= 0 {
		return fmt.Errorf("chart width must be positive, got %d", c.Chart.Width)
	}

	if c.Chart.Height <= 0 {
		return fmt.Errorf("chart height must be positive, got %d", c.Chart.Height)
	}

	if c.Chart.TickStep < 1 {
		return fmt.Errorf("tick_step must be at least 1, got %d", c.Chart.TickStep)
	}

	if c.Chart.TickStart > c.Chart.TickEnd {
		return fmt.Errorf("tick_start %d is after tick_end %d", c.Chart.TickStart, c.Chart.TickEnd)
	}

	validFormats := map[string]bool{"svg": true, "html": true}
	for _, format := range c.Output.Formats {
		if !validFormats[format] {
			return fmt.Errorf("invalid output format: %s (must be svg or html)", format)
		}
	}

	if c.Chart.Reference != "" {
		if _, err := time.Parse("2006-01-02", c.Chart.Reference); err != nil {
			return fmt.Errorf("invalid reference date: %w", err)
		}
	}

	return nil
}

// ValidateForRender performs additional validation required before rendering
func (c *Config) ValidateForRender() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path is required")
	}

	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}

	return nil
}

// ReferenceDate returns the configured reference date, or now in UTC
// when unset. Callers capture this once per run and thread it through
// every transform so one chart is internally consistent.
func (c *Config) ReferenceDate(now time.Time) (time.Time, error) {
	if c.Chart.Reference == "" {
		return now.UTC(), nil
	}

	ref, err := time.Parse("2006-01-02", c.Chart.Reference)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date: %w", err)
	}
	return ref, nil
}
