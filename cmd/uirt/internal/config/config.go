package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional uirt.yaml configuration.
type Config struct {
	Inflate InflateConfig `yaml:"inflate"`
	Convert ConvertConfig `yaml:"convert"`
}

// InflateConfig contains inflation settings.
type InflateConfig struct {
	// Namespace prefixes unqualified type names, e.g. "widget".
	Namespace string `yaml:"namespace,omitempty"`
	// Strict aborts inflation on the first diagnostic.
	Strict bool `yaml:"strict,omitempty"`
}

// ConvertConfig contains conversion settings.
type ConvertConfig struct {
	// Indent is the number of spaces per JSON indentation level.
	Indent int `yaml:"indent,omitempty"`
}

// LoadOptional reads uirt.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "uirt.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read uirt.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse uirt.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads uirt.yaml from dir (if present) and fills defaults.
func Resolve(dir string) (*Config, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	cfg.Inflate.Namespace = strings.TrimSpace(cfg.Inflate.Namespace)
	if cfg.Inflate.Namespace == "" {
		cfg.Inflate.Namespace = "widget"
	}
	if cfg.Convert.Indent <= 0 {
		cfg.Convert.Indent = 4
	}
	return cfg, nil
}
