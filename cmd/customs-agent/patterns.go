package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Manage learned extraction patterns",
}

var (
	patternsConfigPath string
	patternsStoreDir   string

	patternsField       string
	patternsPattern     string
	patternsMinAccuracy float64
	patternsMaxAgeDays  int
)

var patternsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a hand-written pattern for a field",
	RunE:  runPatternsAdd,
}

var patternsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a stored pattern from a field",
	RunE:  runPatternsRemove,
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored patterns, optionally for one field",
	RunE:  runPatternsList,
}

var patternsBestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the proven patterns recommended for a field",
	RunE:  runPatternsBest,
}

var patternsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Recompile every stored pattern and report problems",
	RunE:  runPatternsValidate,
}

var patternsCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove stale inaccurate patterns (manual patterns are kept)",
	RunE:  runPatternsCleanup,
}

func init() {
	patternsCmd.PersistentFlags().StringVar(&patternsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	patternsCmd.PersistentFlags().StringVar(&patternsStoreDir, "store", "", "Learning store directory")

	patternsAddCmd.Flags().StringVar(&patternsField, "field", "", "Field name (required)")
	patternsAddCmd.Flags().StringVar(&patternsPattern, "pattern", "", "Regex pattern with one capture group (required)")
	_ = patternsAddCmd.MarkFlagRequired("field")
	_ = patternsAddCmd.MarkFlagRequired("pattern")

	patternsRemoveCmd.Flags().StringVar(&patternsField, "field", "", "Field name (required)")
	patternsRemoveCmd.Flags().StringVar(&patternsPattern, "pattern", "", "Pattern to remove (required)")
	_ = patternsRemoveCmd.MarkFlagRequired("field")
	_ = patternsRemoveCmd.MarkFlagRequired("pattern")

	patternsListCmd.Flags().StringVar(&patternsField, "field", "", "Limit to one field")

	patternsBestCmd.Flags().StringVar(&patternsField, "field", "", "Field name (required)")
	patternsBestCmd.Flags().Float64Var(&patternsMinAccuracy, "min-accuracy", 0, "Accuracy floor (default from config)")
	_ = patternsBestCmd.MarkFlagRequired("field")

	patternsCleanupCmd.Flags().Float64Var(&patternsMinAccuracy, "min-accuracy", 0, "Accuracy floor (default from config)")
	patternsCleanupCmd.Flags().IntVar(&patternsMaxAgeDays, "max-age-days", 0, "Age threshold in days (default from config)")

	patternsCmd.AddCommand(patternsAddCmd, patternsRemoveCmd, patternsListCmd,
		patternsBestCmd, patternsValidateCmd, patternsCleanupCmd)
	rootCmd.AddCommand(patternsCmd)
}

func openPatternsStore() (*patterns.Repository, error) {
	cfg, err := resolveConfig(patternsConfigPath, patternsStoreDir, "", false)
	if err != nil {
		return nil, err
	}
	return openStore(cfg)
}

func runPatternsAdd(_ *cobra.Command, _ []string) error {
	if _, ok := catalog.Lookup(patternsField); !ok {
		return fmt.Errorf("unknown field: %s", patternsField)
	}

	repo, err := openPatternsStore()
	if err != nil {
		return err
	}
	if err := repo.AddCustom(patternsField, patternsPattern); err != nil {
		return err
	}
	if err := repo.Save(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added manual pattern for %s\n", patternsField)
	return nil
}

func runPatternsRemove(_ *cobra.Command, _ []string) error {
	repo, err := openPatternsStore()
	if err != nil {
		return err
	}
	if !repo.Remove(patternsField, patternsPattern) {
		return fmt.Errorf("pattern not found for field %s", patternsField)
	}
	if err := repo.Save(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Removed pattern from %s\n", patternsField)
	return nil
}

func runPatternsList(_ *cobra.Command, _ []string) error {
	repo, err := openPatternsStore()
	if err != nil {
		return err
	}

	fields := catalog.FieldNames()
	if patternsField != "" {
		fields = []string{patternsField}
	}

	listed := make(map[string][]string)
	for _, field := range fields {
		for _, p := range repo.LearnedFor(field) {
			listed[field] = append(listed[field],
				fmt.Sprintf("%s (%s, %.0f%% over %d)", p.Pattern, p.Type, p.Accuracy, p.TotalAttempts))
		}
	}
	return writeJSONOutput("", listed)
}

func runPatternsBest(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(patternsConfigPath, patternsStoreDir, "", false)
	if err != nil {
		return err
	}
	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	minAccuracy := patternsMinAccuracy
	if minAccuracy == 0 {
		minAccuracy = cfg.BestMinAccuracy
	}
	return writeJSONOutput("", repo.BestPatterns(patternsField, minAccuracy))
}

func runPatternsValidate(_ *cobra.Command, _ []string) error {
	repo, err := openPatternsStore()
	if err != nil {
		return err
	}

	report := repo.Validate()
	if err := writeJSONOutput("", report); err != nil {
		return err
	}
	if len(report.Invalid) > 0 {
		return fmt.Errorf("%d invalid patterns", len(report.Invalid))
	}
	return nil
}

func runPatternsCleanup(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(patternsConfigPath, patternsStoreDir, "", false)
	if err != nil {
		return err
	}
	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	minAccuracy := patternsMinAccuracy
	if minAccuracy == 0 {
		minAccuracy = cfg.CleanupMinAccuracy
	}
	maxAgeDays := patternsMaxAgeDays
	if maxAgeDays == 0 {
		maxAgeDays = cfg.CleanupMaxAgeDays
	}

	removed := repo.Cleanup(minAccuracy, time.Duration(maxAgeDays)*24*time.Hour)
	if err := repo.Save(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Removed %d stale patterns\n", removed)
	return nil
}
