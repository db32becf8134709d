package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/classify"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/extract"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/observability"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textcache"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textnorm"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract declaration fields from one page of OCR text",
	Long: `Extract structured fields from the OCR text of a customs declaration page.

Page 0 is scanned for every field; continuation pages (--page > 0) only for
line-item attributes. With --field only that field is extracted.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runExtract,
}

var (
	extractConfigPath string
	extractInputFile  string
	extractOutputFile string
	extractPage       int
	extractDocType    string
	extractField      string
	extractStoreDir   string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to OCR text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().IntVar(&extractPage, "page", 0, "Page number within the declaration (0 = first page)")
	extractCmd.Flags().StringVar(&extractDocType, "type", "", "Override the classified document type (import_single, import_multi, export_single, export_multi)")
	extractCmd.Flags().StringVar(&extractField, "field", "", "Extract only this field")
	extractCmd.Flags().StringVar(&extractStoreDir, "store", "", "Learning store directory")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted extraction summary")

	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(extractConfigPath, extractStoreDir, "", extractVerbose)
	if err != nil {
		return err
	}

	repo, err := openStore(cfg)
	if err != nil {
		return err
	}

	cache, err := textcache.New(cfg.CacheSize)
	if err != nil {
		return err
	}
	raw, err := cache.Read(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	text := textnorm.Normalize(raw)

	engine := extract.New(repo)

	docType, err := resolveDocType(extractDocType, text)
	if err != nil {
		return err
	}

	if extractField != "" {
		field, err := engine.ExtractField(text, extractField, docType)
		if err != nil {
			return err
		}
		return writeJSONOutput(extractOutputFile, field)
	}

	result := engine.ExtractPage(extractInputFile, text, extractPage)
	result.DocumentType = docType

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPageResult(&result)
	}
	return writeJSONOutput(extractOutputFile, result)
}

// resolveDocType returns the explicit override when given, otherwise the
// classifier's verdict.
func resolveDocType(override, text string) (types.DocumentType, error) {
	if override == "" {
		return classify.Classify(text), nil
	}
	switch t := types.DocumentType(override); t {
	case types.ImportSingle, types.ImportMulti, types.ExportSingle, types.ExportMulti:
		return t, nil
	default:
		return types.UnknownDoc, fmt.Errorf("invalid document type: %s", override)
	}
}
