// Package config provides YAML-based configuration loading for URMS.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level URMS configuration, loaded from urms.yaml.
type Config struct {
	Depot     string          `yaml:"depot"`
	DB        DBConfig        `yaml:"db"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	FOIS      FOISConfig      `yaml:"fois"`
}

// DBConfig holds settings for the embedded SQLite store.
type DBConfig struct {
	Path string `yaml:"path"`
}

// DashboardConfig holds settings for the web dashboard.
type DashboardConfig struct {
	Port int `yaml:"port"`
}

// FOISConfig holds settings for the simulated FOIS feed generator.
type FOISConfig struct {
	Stations  []string `yaml:"stations"`
	MinWagons int      `yaml:"min_wagons"`
	MaxWagons int      `yaml:"max_wagons"`
	Schedule  string   `yaml:"schedule"` // 5-field cron expression
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.DB.Path == "" && c.Depot != "" {
		c.DB.Path = "urms_" + c.Depot + ".db"
	}
	if c.Dashboard.Port == 0 {
		c.Dashboard.Port = 8080
	}
	if len(c.FOIS.Stations) == 0 {
		c.FOIS.Stations = []string{"PLANT-01", "PLANT-02", "JN-EAST"}
	}
	if c.FOIS.MinWagons == 0 {
		c.FOIS.MinWagons = 4
	}
	if c.FOIS.MaxWagons == 0 {
		c.FOIS.MaxWagons = 80
	}
	if c.FOIS.Schedule == "" {
		c.FOIS.Schedule = "*/5 * * * *"
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Depot == "" {
		errs = append(errs, "depot is required")
	}
	if c.FOIS.MinWagons < 1 {
		errs = append(errs, "fois.min_wagons must be at least 1")
	}
	if c.FOIS.MaxWagons < c.FOIS.MinWagons {
		errs = append(errs, "fois.max_wagons must be >= fois.min_wagons")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
