package patterns

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provenPattern(pattern string, success, attempts int) types.LearnedPattern {
	return types.LearnedPattern{
		Pattern:       pattern,
		SourceValue:   "12345678",
		CorrectionID:  "corr-1",
		CreatedAt:     time.Now(),
		SuccessCount:  success,
		TotalAttempts: attempts,
		Accuracy:      float64(success) / float64(attempts) * 100,
		QualityScore:  0.8,
		Type:          types.PatternUserGenerated,
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := NewRepository()
	_, err := src.Add("شماره_کوتا", provenPattern(`(\d{8})`, 5, 5))
	require.NoError(t, err)
	_, err = src.Add("شماره_کوتا", provenPattern(`unproven(\d+)`, 1, 1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "share.json")
	require.NoError(t, src.Export(path))

	dst := NewRepository()
	imported, err := dst.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	stored := dst.LearnedFor("شماره_کوتا")
	require.Len(t, stored, 1)
	assert.Equal(t, `(\d{8})`, stored[0].Pattern)
	assert.Equal(t, types.PatternImported, stored[0].Type)
}

func TestExport_FiltersUnproven(t *testing.T) {
	r := NewRepository()
	_, err := r.Add("وزن_خالص", provenPattern(`good(\d+)`, 4, 5)) // 80%, 5 attempts
	require.NoError(t, err)
	_, err = r.Add("وزن_خالص", provenPattern(`weak(\d+)`, 2, 5)) // 40%
	require.NoError(t, err)
	_, err = r.Add("بیمه", provenPattern(`few(\d+)`, 2, 2)) // too few attempts
	require.NoError(t, err)

	share := r.buildShareFile()
	assert.Equal(t, 1, share.ExportInfo.TotalPatterns)
	assert.Equal(t, shareFileVersion, share.ExportInfo.Version)
	require.Len(t, share.Patterns["وزن_خالص"], 1)
	assert.Equal(t, `good(\d+)`, share.Patterns["وزن_خالص"][0].Pattern)
	assert.NotContains(t, share.Patterns, "بیمه")
}

func TestImport_RejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.json")
	_, err := NewRepository().Import(missing)
	var ioErr *StoreIOError
	assert.ErrorAs(t, err, &ioErr)

	badSchema := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badSchema, []byte(`{"patterns": {}}`), 0o644))
	_, err = NewRepository().Import(badSchema)
	var format *ImportFormatError
	assert.ErrorAs(t, err, &format)
}

func TestImport_SkipsInvalidRecords(t *testing.T) {
	share := `{
		"export_info": {"created_by": "test", "created_at": "2026-08-01T00:00:00Z", "version": "2.0", "total_patterns": 2},
		"patterns": {
			"نوع_ارز": [
				{"pattern": "([A-Z]{3})", "field_name": "نوع_ارز", "success_count": 3, "total_attempts": 4, "accuracy": 75.0, "quality_score": 0.7, "pattern_type": "user_generated"},
				{"pattern": "([bad", "field_name": "نوع_ارز", "success_count": 3, "total_attempts": 4, "accuracy": 75.0, "quality_score": 0.7, "pattern_type": "user_generated"}
			]
		}
	}`
	path := filepath.Join(t.TempDir(), "share.json")
	require.NoError(t, os.WriteFile(path, []byte(share), 0o644))

	r := NewRepository()
	imported, err := r.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	stored := r.LearnedFor("نوع_ارز")
	require.Len(t, stored, 1)
	assert.Equal(t, `([A-Z]{3})`, stored[0].Pattern)
}

func TestValidate_ReportsWeakAndUnused(t *testing.T) {
	r := NewRepository()

	unused := provenPattern(`unused(\d+)`, 0, 0)
	unused.Accuracy = 0
	_, err := r.Add("کرایه", unused)
	require.NoError(t, err)
	_, err = r.Add("کرایه", provenPattern(`weak(\d+)`, 1, 4)) // 25%
	require.NoError(t, err)
	_, err = r.Add("کرایه", provenPattern(`solid(\d+)`, 4, 4))
	require.NoError(t, err)

	report := r.Validate()
	assert.Len(t, report.Valid, 3)
	assert.Empty(t, report.Invalid)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "unused pattern")
	assert.Contains(t, report.Warnings[1], "weak pattern")
}

func TestStats(t *testing.T) {
	r := NewRepository()
	_, err := r.Add("وزن_خالص", provenPattern(`good(\d+)`, 9, 10)) // 90%
	require.NoError(t, err)
	_, err = r.Add("وزن_خالص", provenPattern(`weak(\d+)`, 1, 10)) // 10%
	require.NoError(t, err)
	r.AppendCorrections([]types.Correction{{ID: "corr-1", FieldName: "وزن_خالص"}})
	r.AppendSession(types.LearningSession{ID: "learning_session_9"})

	stats := r.Stats()
	assert.Equal(t, 2, stats.TotalPatterns)
	assert.Equal(t, 1, stats.SuccessfulPatterns)
	assert.InDelta(t, 50.0, stats.SuccessRate, 1e-9)
	assert.Equal(t, 1, stats.FieldsCount)
	assert.Equal(t, 1, stats.TotalCorrections)
	assert.Equal(t, 1, stats.LearningSessions)
	assert.Equal(t, "learning_session_9", stats.LastSessionID)

	analysis := stats.FieldAnalysis["وزن_خالص"]
	assert.Equal(t, 2, analysis.PatternCount)
	assert.InDelta(t, 50.0, analysis.AvgAccuracy, 1e-9)
	assert.InDelta(t, 90.0, analysis.BestAccuracy, 1e-9)
	assert.Equal(t, 20, analysis.TotalAttempts)
	assert.Equal(t, 10, analysis.SuccessfulAttempts)
}
