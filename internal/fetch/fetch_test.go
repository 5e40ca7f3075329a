package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Section 1. Liability.</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Section 1. Liability.")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLRejectsInvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURLReportsHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractDocumentTextPrefersContentSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<main>The tenant shall maintain the premises.</main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractDocumentText(html, LegalDocumentSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "The tenant shall maintain the premises.")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractDocumentTextFallsBackToBody(t *testing.T) {
	html := `<html><body><div>Plain body text only.</div></body></html>`

	text, err := ExtractDocumentText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "Plain body text only.", text)
}

func TestExtractDocumentTextCollapsesBlankLines(t *testing.T) {
	html := "<html><body><main>First line.\n\n\n   \nSecond line.</main></body></html>"

	text, err := ExtractDocumentText(html, []string{"main"})
	require.NoError(t, err)
	assert.Equal(t, "First line.\nSecond line.", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short snippet"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long legal text ", 40)))
}
