// Package config provides configuration management for the tariff
// service and CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"port-tariff/core/engine"
	"port-tariff/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rules contains rule database settings
	Rules RulesConfig `json:"rules"`

	// Engine contains the tariff policy constants
	Engine engine.Config `json:"engine"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Server contains API server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RulesConfig contains rule database settings
type RulesConfig struct {
	// Path is the rule database file (.json or .hcl)
	Path string `json:"path"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows per-line charging details
	ShowDetails bool `json:"show_details"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	rulesPath := filepath.Join(homeDir, ".port-tariff", "tariff_rules.json")

	return &Config{
		Version: "1.0",
		Rules: RulesConfig{
			Path: rulesPath,
		},
		Engine: engine.DefaultConfig(),
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file; a missing file yields the
// defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
