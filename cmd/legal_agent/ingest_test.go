package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --input or --input-url must be provided")
}

func TestIngestCommand_CleansWhitespace(t *testing.T) {
	binaryPath := getBinaryPath(t)

	inputPath := filepath.Join(t.TempDir(), "clause.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("The  tenant\n\nshall   pay rent ."), 0644))

	cmd := exec.Command(binaryPath, "ingest", "--input", inputPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "The tenant shall pay rent.")
}

func TestIngestCommand_WritesOutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "clause.txt")
	outPath := filepath.Join(dir, "cleaned.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("Rent is due monthly."), 0644))

	cmd := exec.Command(binaryPath, "ingest", "--input", inputPath, "--out", outPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	cleaned, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Rent is due monthly.", string(cleaned))
}
