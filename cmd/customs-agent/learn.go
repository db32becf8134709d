package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/db"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/learning"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/observability"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Process a batch of field corrections into new extraction patterns",
	Long: `Process user corrections from a JSON file: each changed field is recorded
as a correction and, where the corrected value carries enough signal, a new
extraction pattern is synthesized and added to the learning store.

The corrections file maps field IDs to edits:

  {"page0_شماره_کوتا": {"field_name": "شماره_کوتا", "original_value": "", "current_value": "12345678"}}

With --db-url the session is also archived to PostgreSQL; the JSON store
stays authoritative.`,
	RunE: runLearn,
}

var (
	learnConfigPath      string
	learnCorrectionsFile string
	learnStoreDir        string
	learnDatabaseURL     string
	learnVerbose         bool
)

func init() {
	learnCmd.Flags().StringVar(&learnConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	learnCmd.Flags().StringVar(&learnCorrectionsFile, "corrections", "", "Path to corrections JSON file (required)")
	learnCmd.Flags().StringVar(&learnStoreDir, "store", "", "Learning store directory")
	learnCmd.Flags().StringVar(&learnDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	learnCmd.Flags().BoolVarP(&learnVerbose, "verbose", "v", false, "Print a formatted session summary")

	_ = learnCmd.MarkFlagRequired("corrections")

	rootCmd.AddCommand(learnCmd)
}

func runLearn(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(learnConfigPath, learnStoreDir, learnDatabaseURL, learnVerbose)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(learnCorrectionsFile)
	if err != nil {
		return fmt.Errorf("failed to read corrections file: %w", err)
	}
	var edits map[string]types.FieldEdit
	if err := json.Unmarshal(data, &edits); err != nil {
		return fmt.Errorf("failed to parse corrections JSON: %w", err)
	}

	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	session, learned := learning.NewProcessor(repo).Learn(edits)
	if !learned {
		_, _ = fmt.Fprintln(os.Stdout, "No changed fields; nothing to learn")
		return nil
	}

	if err := repo.Save(); err != nil {
		return fmt.Errorf("failed to save learning store: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if err := archiveSession(cfg.DatabaseURL, session); err != nil {
			// Archival is best-effort; the file store already holds the session.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: database archive failed: %v\n", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintLearningSession(session)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Processed %d corrections, learned %d patterns\n",
		len(session.Corrections), len(session.NewPatterns))
	return nil
}

func archiveSession(databaseURL string, session *types.LearningSession) error {
	ctx := context.Background()

	conn, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.ArchiveSession(ctx, *session); err != nil {
		return err
	}
	if err := conn.ArchiveCorrections(ctx, session.ID, session.Corrections); err != nil {
		return err
	}
	return conn.ArchivePatterns(ctx, session.NewPatterns)
}
