// Package main provides the entry point for the customs declaration
// extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "customs-agent",
	Short: "Field extraction for scanned customs declarations",
	Long:  "customs-agent extracts structured fields from OCR text of Iranian customs declaration forms and learns new extraction patterns from user corrections.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
