package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"input_url": "https://example.com/terms",
		"level": "basic",
		"max_chunk_chars": 500,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/terms", cfg.InputURL)
	assert.Equal(t, "basic", cfg.Level)
	assert.Equal(t, 500, cfg.MaxChunkChars)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Input:    "terms.txt",
		InputURL: "https://example.com/terms",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_BadLevel(t *testing.T) {
	cfg := &Config{Level: "expert"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{MaxChunkChars: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_chunk_chars")
}

func TestValidate_BadOverlap(t *testing.T) {
	cfg := &Config{Overlap: 2}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestValidate_ValidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("Some terms."), 0644))

	cfg := &Config{
		Input:         tmpFile,
		Level:         "intermediate",
		MaxChunkChars: 400,
		Overlap:       1,
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Input: "/nonexistent/terms.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Level:   "advanced",
		Verbose: true,
	}
	defaults := Config{
		Level:             "intermediate",
		MaxChunkChars:     400,
		SummaryChunkChars: 800,
		Overlap:           1,
		APIKey:            "default-key",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win
	assert.Equal(t, "advanced", merged.Level)
	assert.True(t, merged.Verbose)

	// Empty values fall back to defaults
	assert.Equal(t, 400, merged.MaxChunkChars)
	assert.Equal(t, 800, merged.SummaryChunkChars)
	assert.Equal(t, 1, merged.Overlap)
	assert.Equal(t, "default-key", merged.APIKey)
}
