// Package cliconfig loads YAML configuration for the loosejson CLI.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Rename styles accepted by the --rename flag and the rename config key.
const (
	RenameNone  = "none"
	RenameCamel = "camel"
	RenameSnake = "snake"
	RenameKebab = "kebab"
)

// Config holds the CLI defaults that can be persisted in a YAML file.
// Command-line flags override anything loaded from a file.
type Config struct {
	Rename   string `yaml:"rename"`
	Compact  bool   `yaml:"compact"`
	Fallback string `yaml:"fallback"`
	Verbose  bool   `yaml:"verbose"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Rename: RenameNone,
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and
// its parents.
func FindConfigFile() string {
	configNames := []string{".loosejson.yml", ".loosejson.yaml", "loosejson.yml", "loosejson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch c.Rename {
	case RenameNone, RenameCamel, RenameSnake, RenameKebab:
		return nil
	default:
		return fmt.Errorf("invalid rename style %q (expected none, camel, snake or kebab)", c.Rename)
	}
}
