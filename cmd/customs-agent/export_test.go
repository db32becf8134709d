package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_MissingOut(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export")
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestImportCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import",
		"--in", "/nonexistent/share.json", "--store", filepath.Join(t.TempDir(), "store"))
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "import failed")
}

func TestExportImportStats_EmptyStore(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	share := filepath.Join(dir, "share.json")

	cmd := exec.Command(binaryPath, "export", "--out", share, "--store", store)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	_, err = os.Stat(share)
	require.NoError(t, err)

	cmd = exec.Command(binaryPath, "import", "--in", share, "--store", store)
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Imported 0 patterns")

	cmd = exec.Command(binaryPath, "stats", "--store", store, "--json")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "total_patterns")
}
