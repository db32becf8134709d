package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/config"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textcache"
)

// defaultConfig supplies the values used when neither a config file nor a
// flag provides one.
var defaultConfig = config.Config{
	StoreDir:           "learning_data",
	CleanupMinAccuracy: patterns.DefaultCleanupMinAccuracy,
	CleanupMaxAgeDays:  patterns.DefaultCleanupMaxAgeDays,
	BestMinAccuracy:    patterns.DefaultBestMinAccuracy,
	CacheSize:          textcache.DefaultSize,
}

// resolveConfig loads the optional config file, applies CLI overrides on top
// of it and fills the rest from defaults. Flag values win over file values.
func resolveConfig(configPath, storeDir, databaseURL string, verbose bool) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if storeDir != "" {
		cfg.StoreDir = storeDir
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if verbose {
		cfg.Verbose = true
	}

	return cfg.MergeWithDefaults(defaultConfig), nil
}

// openStore opens the file-backed learning store, warning on stderr when a
// store file is corrupt.
func openStore(cfg config.Config) (*patterns.Repository, error) {
	repo, err := patterns.Open(cfg.StoreDir, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to open learning store: %w", err)
	}
	return repo, nil
}

// writeJSONOutput marshals v with indentation to path, or to stdout when
// path is empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
