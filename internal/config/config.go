// Package config loads chessd settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `yaml:"listen"`
	// Database is the SQLite file path; empty disables persistence.
	Database string `yaml:"database"`
	// DevMode relaxes rate limits and enables WAL journaling.
	DevMode bool `yaml:"dev_mode"`
}

// Load reads path (when non-empty), applies CHESSD_* environment overrides,
// then validates. Defaults-first, so a missing file with overrides still works.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Listen: ":8080",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("CHESSD_LISTEN")); v != "" {
		cfg.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSD_DB")); v != "" {
		cfg.Database = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSD_DEV")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHESSD_DEV must be a boolean, got %q", v)
		}
		cfg.DevMode = b
	}

	if cfg.Listen == "" {
		return nil, fmt.Errorf("listen address is required")
	}

	return cfg, nil
}
