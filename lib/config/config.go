// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the jokedeck
// tools.
//
// Configuration is loaded from a single YAML file specified by:
//   - JOKEDECK_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is set, Default() is used as-is. There is no discovery
// chain and environment variables do not override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration shared by both jokedeck binaries.
type Config struct {
	// StorePath is the JSON catalogue file. Default: data.txt in the
	// working directory.
	StorePath string `yaml:"store_path"`

	// ListWidth is the display width jokes are shortened to in list
	// and search output. Default: 50.
	ListWidth int `yaml:"list_width"`

	// LogOutput is a file path for JSON log records. Empty disables
	// logging. The rating TUI owns the terminal, so logs never go to
	// stderr.
	LogOutput string `yaml:"log_output"`
}

// Default returns the built-in configuration, used when no config
// file is given.
func Default() *Config {
	return &Config{
		StorePath: "data.txt",
		ListWidth: 50,
	}
}

// Load loads configuration from the JOKEDECK_CONFIG environment
// variable when set, otherwise returns Default().
func Load() (*Config, error) {
	configPath := os.Getenv("JOKEDECK_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific YAML file. Fields
// absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks for values that would break the display or the
// store.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.ListWidth < 10 {
		return fmt.Errorf("list_width %d is too narrow (minimum 10)", c.ListWidth)
	}
	return nil
}
