// Package types provides type definitions for structured data used throughout the extraction engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// DocumentType classifies a declaration by direction (import/export) and
// cardinality (single-item/multi-item).
type DocumentType string

const (
	ImportSingle DocumentType = "import_single"
	ImportMulti  DocumentType = "import_multi"
	ExportSingle DocumentType = "export_single"
	ExportMulti  DocumentType = "export_multi"
	UnknownDoc   DocumentType = "unknown"
)

// IsImport reports whether the document is an import declaration.
func (d DocumentType) IsImport() bool {
	return strings.HasPrefix(string(d), "import")
}

// IsMulti reports whether the document carries more than one line item.
func (d DocumentType) IsMulti() bool {
	return strings.HasSuffix(string(d), "_multi")
}

// MakeDocumentType combines a direction and a cardinality into one of the
// four concrete document types.
func MakeDocumentType(isImport, isMulti bool) DocumentType {
	switch {
	case isImport && isMulti:
		return ImportMulti
	case isImport:
		return ImportSingle
	case isMulti:
		return ExportMulti
	default:
		return ExportSingle
	}
}
