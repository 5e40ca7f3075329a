// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Input    string `json:"input,omitempty"`     // Path to document text file
	InputURL string `json:"input_url,omitempty"` // URL to fetch the document from

	// Processing
	Level             string `json:"level,omitempty"`               // Simplification level: basic, intermediate, advanced
	MaxChunkChars     int    `json:"max_chunk_chars,omitempty"`     // Character budget per simplification chunk
	SummaryChunkChars int    `json:"summary_chunk_chars,omitempty"` // Character budget per summarization chunk
	Overlap           int    `json:"overlap,omitempty"`             // Sentences of overlap between chunks (0 or 1)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for script-heavy sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Input != "" && c.InputURL != "" {
		return fmt.Errorf("config error: 'input' and 'input_url' are mutually exclusive")
	}

	if c.Level != "" {
		switch c.Level {
		case "basic", "intermediate", "advanced":
		default:
			return fmt.Errorf("config error: 'level' must be basic, intermediate, or advanced")
		}
	}

	// Validate numeric ranges
	if c.MaxChunkChars < 0 {
		return fmt.Errorf("config error: 'max_chunk_chars' must be non-negative")
	}
	if c.SummaryChunkChars < 0 {
		return fmt.Errorf("config error: 'summary_chunk_chars' must be non-negative")
	}
	if c.Overlap < 0 || c.Overlap > 1 {
		return fmt.Errorf("config error: 'overlap' must be 0 or 1")
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.InputURL == "" {
		result.InputURL = defaults.InputURL
	}
	if result.Level == "" {
		result.Level = defaults.Level
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxChunkChars == 0 {
		result.MaxChunkChars = defaults.MaxChunkChars
	}
	if result.SummaryChunkChars == 0 {
		result.SummaryChunkChars = defaults.SummaryChunkChars
	}
	if result.Overlap == 0 {
		result.Overlap = defaults.Overlap
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
