// Package ingestion acquires raw document text from local files or URLs
// and hands it to the preprocessing stage untouched.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/legal-simplifier/internal/fetch"
	"github.com/jonathan/legal-simplifier/internal/types"
)

// browserTimeout bounds a headless-browser rendering attempt.
const browserTimeout = 45 * time.Second

// FromFile reads a plain-text document from disk. Only .txt and .md files
// are accepted; binary formats need extraction before they reach the
// pipeline.
func FromFile(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", "":
	default:
		return "", fmt.Errorf("%w: unsupported document format %q (expected plain text)", types.ErrInvalidInput, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: document %s is empty", types.ErrInvalidInput, path)
	}
	return text, nil
}

// FromURL fetches a document over HTTP and extracts its main text. When
// the extracted text is suspiciously short and useBrowser is set, the page
// is re-rendered in a headless browser before extraction.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractDocumentText(result.HTML, fetch.LegalDocumentSelectors())
	if err != nil {
		return "", err
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		html, err := fetch.WithBrowser(ctx, urlStr, browserTimeout, verbose)
		if err != nil {
			return "", err
		}
		text, err = fetch.ExtractDocumentText(html, fetch.LegalDocumentSelectors())
		if err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no document text extracted from %s", types.ErrInvalidInput, urlStr)
	}
	return text, nil
}
