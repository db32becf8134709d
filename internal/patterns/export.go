package patterns

import (
	"encoding/json"
	"os"
	"regexp"
	"time"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/schemas"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	rootschemas "github.com/Mohsen-data-wizard/Pdf-extractor/schemas"
)

// shareFileVersion identifies the share-export format.
const shareFileVersion = "2.0"

// ExportInfo describes the provenance of a share-export file.
type ExportInfo struct {
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	Version       string    `json:"version"`
	TotalPatterns int       `json:"total_patterns"`
}

// ShareFile is the on-disk format for exchanging proven patterns between
// installations.
type ShareFile struct {
	ExportInfo ExportInfo                             `json:"export_info"`
	Patterns   map[string][]types.LearnedPattern      `json:"patterns"`
	Statistics Statistics                             `json:"statistics"`
}

// Export writes proven patterns (accuracy >= 60, attempts >= 3) to path
// together with aggregate statistics.
func (r *Repository) Export(path string) error {
	share := r.buildShareFile()
	return writeJSONAtomic(path, share)
}

func (r *Repository) buildShareFile() ShareFile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exported := make(map[string][]types.LearnedPattern)
	total := 0
	for _, field := range r.fieldNames() {
		var proven []types.LearnedPattern
		for _, p := range r.learned[field] {
			if p.Accuracy >= exportMinAccuracy && p.TotalAttempts >= exportMinAttempts {
				proven = append(proven, p)
			}
		}
		if len(proven) > 0 {
			exported[field] = proven
			total += len(proven)
		}
	}

	return ShareFile{
		ExportInfo: ExportInfo{
			CreatedBy:     r.createdBy,
			CreatedAt:     time.Now(),
			Version:       shareFileVersion,
			TotalPatterns: total,
		},
		Patterns:   exported,
		Statistics: r.statsLocked(),
	}
}

// Import merges patterns from a share file through the regular Add path, so
// repeats update counters instead of duplicating entries. Imported records
// are schema-validated first and tagged pattern_type "imported". Returns the
// number of patterns merged; individually invalid records are skipped, not
// fatal.
func (r *Repository) Import(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &StoreIOError{Path: path, Op: "read", Cause: err}
	}

	if err := schemas.ValidateJSONString(rootschemas.ShareExport, string(data)); err != nil {
		return 0, &ImportFormatError{Path: path, Message: err.Error()}
	}

	var share ShareFile
	if err := json.Unmarshal(data, &share); err != nil {
		return 0, &CorruptStoreError{Path: path, Cause: err}
	}
	if share.Patterns == nil {
		return 0, &ImportFormatError{Path: path, Message: "missing patterns section"}
	}

	imported := 0
	for field, list := range share.Patterns {
		for _, p := range list {
			p.Type = types.PatternImported
			p.FieldName = field
			if p.Validate() != nil {
				continue
			}
			if _, err := r.Add(field, p); err != nil {
				continue
			}
			imported++
		}
	}
	return imported, nil
}

// ValidationReport lists the outcome of recompiling every stored pattern.
// Invalid patterns are reported, not silently dropped.
type ValidationReport struct {
	Valid    []string `json:"valid_patterns"`
	Invalid  []string `json:"invalid_patterns"`
	Warnings []string `json:"warnings"`
}

// Validate recompiles every stored pattern and reports unused or
// low-accuracy ones as warnings.
func (r *Repository) Validate() ValidationReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var report ValidationReport
	for _, field := range r.fieldNames() {
		for _, p := range r.learned[field] {
			entry := field + ": " + p.Pattern
			if _, err := regexp.Compile(p.Pattern); err != nil {
				report.Invalid = append(report.Invalid, entry)
				continue
			}
			report.Valid = append(report.Valid, entry)

			switch {
			case p.TotalAttempts == 0:
				report.Warnings = append(report.Warnings, "unused pattern: "+entry)
			case p.Accuracy < 50:
				report.Warnings = append(report.Warnings, "weak pattern: "+entry)
			}
		}
	}
	return report
}
