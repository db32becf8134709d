// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPageResult outputs a human-readable summary of one extracted page.
func (p *Printer) PrintPageResult(result *types.PageResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s (page %d)\n", result.File, result.Page))
	sb.WriteString(fmt.Sprintf("Type:      %s\n", result.DocumentType))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", result.Status))
	sb.WriteString(fmt.Sprintf("Success:   %.1f%%\n", result.SuccessRate))
	if result.SkippedPatterns > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:   %d patterns\n", result.SkippedPatterns))
	}
	sb.WriteString("\n")

	names := make([]string, 0, len(result.Extracted))
	for name, field := range result.Extracted {
		if field.Found() {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		sb.WriteString("No fields extracted")
	} else {
		sb.WriteString("Extracted fields:\n")
		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			field := result.Extracted[names[i]]
			sb.WriteString(fmt.Sprintf("  • %s = %s (%.2f)\n", names[i], field.Value, field.Confidence))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningSession outputs a summary of a processed correction batch.
func (p *Printer) PrintLearningSession(sess *types.LearningSession) {
	if sess == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:      %s\n", sess.ID))
	sb.WriteString(fmt.Sprintf("Corrections:  %d\n", len(sess.Corrections)))
	sb.WriteString(fmt.Sprintf("New patterns: %d\n", len(sess.NewPatterns)))

	if len(sess.Corrections) > 0 {
		sb.WriteString("\n")
		count := min(len(sess.Corrections), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := sess.Corrections[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s (%.2f)\n", c.FieldName, c.Type, c.QualityScore))
		}
		if len(sess.Corrections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sess.Corrections)-maxItemsToShow))
		}
	}

	p.printBox("LEARNING SESSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs aggregate learning statistics.
func (p *Printer) PrintStats(stats patterns.Statistics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Patterns:     %d (%d proven)\n", stats.TotalPatterns, stats.SuccessfulPatterns))
	sb.WriteString(fmt.Sprintf("Success rate: %.1f%%\n", stats.SuccessRate))
	sb.WriteString(fmt.Sprintf("Fields:       %d\n", stats.FieldsCount))
	sb.WriteString(fmt.Sprintf("Corrections:  %d\n", stats.TotalCorrections))
	sb.WriteString(fmt.Sprintf("Sessions:     %d\n", stats.LearningSessions))
	if stats.LastSessionID != "" {
		sb.WriteString(fmt.Sprintf("Last session: %s\n", stats.LastSessionID))
	}

	if len(stats.FieldAnalysis) > 0 {
		sb.WriteString("\nPer field:\n")
		names := make([]string, 0, len(stats.FieldAnalysis))
		for name := range stats.FieldAnalysis {
			names = append(names, name)
		}
		sort.Strings(names)

		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := stats.FieldAnalysis[names[i]]
			sb.WriteString(fmt.Sprintf("  • %s: %d patterns, best %.0f%%\n", names[i], a.PatternCount, a.BestAccuracy))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	p.printBox("LEARNING STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}
