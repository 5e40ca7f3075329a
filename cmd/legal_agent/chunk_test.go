package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "chunk")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --input or --input-url must be provided")
}

func TestChunkCommand_BadOverlap(t *testing.T) {
	binaryPath := getBinaryPath(t)

	inputPath := filepath.Join(t.TempDir(), "clause.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("One sentence. Two sentences."), 0644))

	cmd := exec.Command(binaryPath, "chunk", "--input", inputPath, "--overlap", "3")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid configuration")
}

func TestChunkCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	inputPath := filepath.Join(t.TempDir(), "clause.txt")
	content := "The lessee shall maintain the premises. The lessor may inspect with notice. " +
		"Either party may terminate with thirty days written notice."
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0644))

	cmd := exec.Command(binaryPath, "chunk", "--input", inputPath, "--max-chars", "80")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "DOCUMENT CHUNKS")
}

func TestChunkCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	inputPath := filepath.Join(t.TempDir(), "clause.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("First sentence here. Second sentence here."), 0644))

	cmd := exec.Command(binaryPath, "chunk", "--input", inputPath, "--json")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), `"text"`)
	assert.Contains(t, string(output), `"sentence_indices"`)
}
