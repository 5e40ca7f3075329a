package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlossaryAddCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --term",
			args:        []string{"glossary", "add", "--explanation", "some explanation"},
			errorString: "required",
		},
		{
			name:        "Missing --explanation",
			args:        []string{"glossary", "add", "--term", "lien"},
			errorString: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestGlossaryUpdateCommand_InvalidID(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "glossary", "update", "not-a-uuid", "--explanation", "new text")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid term id")
}

func TestGlossaryUpdateCommand_NoFields(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "glossary", "update", "550e8400-e29b-41d4-a716-446655440000")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "provide --explanation or --category")
}

func TestGlossaryListCommand_MissingDatabaseURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "glossary", "list")
	cmd.Env = []string{"PATH=/usr/bin:/bin"} // strip DATABASE_URL
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "DATABASE_URL environment variable or --db-url flag is required")
}
