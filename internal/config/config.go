// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	StoreDir string `json:"store_dir,omitempty"` // Learning store directory (JSON files)

	// Learning lifecycle
	CleanupMinAccuracy float64 `json:"cleanup_min_accuracy,omitempty"` // Accuracy floor below which stale patterns are removed (0-100)
	CleanupMaxAgeDays  int     `json:"cleanup_max_age_days,omitempty"` // Age in days beyond which inaccurate patterns are removed
	BestMinAccuracy    float64 `json:"best_min_accuracy,omitempty"`    // Accuracy floor for pattern recommendations (0-100)

	// Behavior
	CacheSize   int    `json:"cache_size,omitempty"`   // Max entries in the OCR text cache
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for the optional correction archive
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed extraction summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.CleanupMinAccuracy < 0 || c.CleanupMinAccuracy > 100 {
		return fmt.Errorf("config error: 'cleanup_min_accuracy' must be in [0, 100]")
	}
	if c.BestMinAccuracy < 0 || c.BestMinAccuracy > 100 {
		return fmt.Errorf("config error: 'best_min_accuracy' must be in [0, 100]")
	}
	if c.CleanupMaxAgeDays < 0 {
		return fmt.Errorf("config error: 'cleanup_max_age_days' must be non-negative")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StoreDir == "" {
		result.StoreDir = defaults.StoreDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.CleanupMinAccuracy == 0 {
		result.CleanupMinAccuracy = defaults.CleanupMinAccuracy
	}
	if result.BestMinAccuracy == 0 {
		result.BestMinAccuracy = defaults.BestMinAccuracy
	}
	if result.CleanupMaxAgeDays == 0 {
		result.CleanupMaxAgeDays = defaults.CleanupMaxAgeDays
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
