package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import patterns from a share file",
	Long:  "Merge patterns from a share file into the learning store. The file is schema-validated first; individually invalid records are skipped.",
	RunE:  runImport,
}

var (
	importConfigPath string
	importStoreDir   string
	importInputFile  string
)

func init() {
	importCmd.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	importCmd.Flags().StringVar(&importStoreDir, "store", "", "Learning store directory")
	importCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to share file (required)")

	_ = importCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(importConfigPath, importStoreDir, "", false)
	if err != nil {
		return err
	}
	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	imported, err := repo.Import(importInputFile)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if err := repo.Save(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Imported %d patterns\n", imported)
	return nil
}
