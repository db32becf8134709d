package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/extract"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/observability"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textcache"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textnorm"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract fields from every OCR text file in a directory",
	Long: `Extract declaration fields from all .txt files in a directory concurrently.

Files are processed in name order; the Nth file of a declaration is treated
as page N-1, so the first file is scanned for every field and the rest for
line-item attributes.`,
	RunE: runBatch,
}

var (
	batchConfigPath string
	batchInputDir   string
	batchOutputFile string
	batchStoreDir   string
	batchVerbose    bool
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchInputDir, "in", "i", "", "Directory of OCR text files (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchStoreDir, "store", "", "Learning store directory")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a formatted summary per page")

	_ = batchCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(batchConfigPath, batchStoreDir, "", batchVerbose)
	if err != nil {
		return err
	}

	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(batchInputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".txt") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("no .txt files found in %s", batchInputDir)
	}

	cache, err := textcache.New(cfg.CacheSize)
	if err != nil {
		return err
	}

	pages := make([]extract.PageInput, 0, len(files))
	for i, name := range files {
		path := filepath.Join(batchInputDir, name)
		raw, err := cache.Read(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		pages = append(pages, extract.PageInput{
			File: path,
			Page: i,
			Text: textnorm.Normalize(raw),
		})
	}

	engine := extract.New(repo)
	results, err := engine.ExtractPages(context.Background(), pages)
	if err != nil {
		return fmt.Errorf("batch extraction failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range results {
			printer.PrintPageResult(&results[i])
		}
	}
	return writeJSONOutput(batchOutputFile, results)
}
