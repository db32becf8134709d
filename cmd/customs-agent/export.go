package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export proven patterns to a share file",
	Long:  "Export patterns with at least 60% accuracy over three or more attempts to a share file that other installations can import.",
	RunE:  runExport,
}

var (
	exportConfigPath string
	exportStoreDir   string
	exportOutputFile string
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCmd.Flags().StringVar(&exportStoreDir, "store", "", "Learning store directory")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to share file (required)")

	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(exportConfigPath, exportStoreDir, "", false)
	if err != nil {
		return err
	}
	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := repo.Export(exportOutputFile); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Exported proven patterns to %s\n", exportOutputFile)
	return nil
}
