package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/legal-simplifier/internal/ingestion"
	"github.com/jonathan/legal-simplifier/internal/llm"
)

// readDocument loads a document from a file path or a URL. Exactly one of
// the two must be set; callers validate that before calling.
func readDocument(ctx context.Context, path, urlStr string, useBrowser, verbose bool) (string, error) {
	if urlStr != "" {
		text, err := ingestion.FromURL(ctx, urlStr, useBrowser, verbose)
		if err != nil {
			return "", fmt.Errorf("failed to ingest from URL: %w", err)
		}
		return text, nil
	}
	text, err := ingestion.FromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to ingest from file: %w", err)
	}
	return text, nil
}

// resolveAPIKey returns the flag value or falls back to GEMINI_API_KEY.
func resolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
}

// resolveDatabaseURL returns the flag value or falls back to DATABASE_URL.
// An empty result is fine for commands where persistence is optional.
func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

// newLLMClient builds a Gemini client with the default model configuration.
func newLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// writeOutputFile writes content to path, creating it with 0644.
func writeOutputFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
