package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate learning statistics",
	RunE:  runStats,
}

var (
	statsConfigPath string
	statsStoreDir   string
	statsJSON       bool
)

func init() {
	statsCmd.Flags().StringVar(&statsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	statsCmd.Flags().StringVar(&statsStoreDir, "store", "", "Learning store directory")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Emit raw JSON instead of the formatted summary")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(statsConfigPath, statsStoreDir, "", false)
	if err != nil {
		return err
	}
	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	stats := repo.Stats()
	if statsJSON {
		return writeJSONOutput("", stats)
	}
	observability.NewPrinter(os.Stdout).PrintStats(stats)
	return nil
}
