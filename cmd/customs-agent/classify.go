package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/classify"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/textnorm"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a declaration page as import/export, single/multi-item",
	RunE:  runClassify,
}

var classifyInputFile string

func init() {
	classifyCmd.Flags().StringVarP(&classifyInputFile, "in", "i", "", "Path to OCR text file (required)")
	_ = classifyCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(classifyInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	docType := classify.Classify(textnorm.Normalize(string(raw)))
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", docType)
	return nil
}
