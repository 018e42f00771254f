// Package config loads sysdbd's YAML configuration file with os.ReadFile +
// yaml.Unmarshal.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is sysdbd's top-level configuration.
type Config struct {
	ListenAddr string `yaml:"listenAddr"`
	LogLevel   string `yaml:"logLevel"`
	LogJSON    bool   `yaml:"logJSON"`

	// DebugStore exposes the /debug/store introspection endpoint. Off by
	// default: it renders the full unfiltered store and is meant for
	// local troubleshooting, not a production-facing surface.
	DebugStore bool `yaml:"debugStore"`

	// CollectorPeriod controls how often pkg/metrics.Collector refreshes
	// the store-size gauges. Zero uses the collector's own default.
	CollectorPeriod string `yaml:"collectorPeriod"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		ListenAddr: "127.0.0.1:9090",
		LogLevel:   "info",
		LogJSON:    false,
	}
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}
	return cfg, nil
}
