/*
PURPOSE:
  Defines the configuration structure and loading logic for the migration.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - The default run needs no configuration file at all.

  Implementation-discovered:
  - Needs to support YAML parsing for repeatable recovery jobs.
  - Flags override file values (handled in internal/cli).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if the config file is missing or invalid.
  - Validate() rejects values the engine cannot use.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults must reproduce the plain `migrate-to-jsonl in out` behaviour.

USAGE:
  cfg, err := config.Load("migrate.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Log formats understood by output.NewLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the full configuration for a migration run.
type Config struct {
	// PreviewLength is how many characters of a rejected candidate are logged.
	PreviewLength int `yaml:"preview_length"`
	// StringAware skips braces inside string literals when counting depth.
	StringAware bool `yaml:"string_aware"`
	// RejectsFile, when set, receives a CSV report of rejected candidates.
	RejectsFile string `yaml:"rejects_file"`
	LogFormat   string `yaml:"log_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PreviewLength: 100,
		StringAware:   false,
		LogFormat:     LogFormatText,
	}
}

// Load reads configuration from a file.
// If path is empty, the defaults are returned and no file is read.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.PreviewLength < 0 {
		return fmt.Errorf("preview_length must be >= 0, got %d", c.PreviewLength)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q (want %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}
