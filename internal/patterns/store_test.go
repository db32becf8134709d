package patterns

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingDirectoryAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")

	r, err := Open(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, r.LearnedFor("وزن_خالص"))
	assert.Empty(t, r.Corrections())
	assert.Empty(t, r.Sessions())

	// The directory is created on open.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveOpen_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	r, err := Open(dir, nil)
	require.NoError(t, err)

	_, err = r.Add("وزن_خالص", learnedPattern(`(\d+)\s*کیلو`))
	require.NoError(t, err)
	r.AppendCorrections([]types.Correction{{
		ID:             "corr-1",
		FieldID:        "page0_وزن_خالص",
		FieldName:      "وزن_خالص",
		CorrectedValue: "1250.5",
		Type:           types.CorrectionAddition,
		QualityScore:   0.9,
		Timestamp:      time.Now(),
	}})
	r.AppendSession(types.LearningSession{ID: "learning_session_1", Timestamp: time.Now()})
	require.NoError(t, r.Save())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)

	stored := reopened.LearnedFor("وزن_خالص")
	require.Len(t, stored, 1)
	assert.Equal(t, `(\d+)\s*کیلو`, stored[0].Pattern)
	assert.Equal(t, types.PatternUserGenerated, stored[0].Type)

	corrs := reopened.Corrections()
	require.Len(t, corrs, 1)
	assert.Equal(t, "corr-1", corrs[0].ID)

	sessions := reopened.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "learning_session_1", sessions[0].ID)
}

func TestOpen_CorruptFileFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, learnedPatternsFile), []byte("{not json"), 0o644))

	var warn bytes.Buffer
	r, err := Open(dir, &warn)
	require.NoError(t, err)
	assert.Empty(t, r.LearnedFor("وزن_خالص"))
	assert.Contains(t, warn.String(), "Warning:")
	assert.Contains(t, warn.String(), learnedPatternsFile)

	// Learning still works and the next save rewrites the corrupt file.
	_, err = r.Add("وزن_خالص", learnedPattern(`(\d+)`))
	require.NoError(t, err)
	require.NoError(t, r.Save())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	assert.Len(t, reopened.LearnedFor("وزن_خالص"), 1)
}

func TestSave_WritesEmptyArraysNotNull(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, r.Save())

	data, err := os.ReadFile(filepath.Join(dir, correctionsFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	data, err = os.ReadFile(filepath.Join(dir, performanceLogFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestSave_InMemoryNoop(t *testing.T) {
	r := NewRepository()
	assert.NoError(t, r.Save())
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, r.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}
