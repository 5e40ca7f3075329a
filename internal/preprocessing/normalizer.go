// Package preprocessing provides text cleaning, sentence segmentation, and
// chunking for the analysis pipeline. All functions are pure and safe for
// concurrent use.
package preprocessing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	disallowedChars  = regexp.MustCompile(`[^\p{L}\p{N}\s.,;:!?\-'"]`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,;:!?])`)
	punctuationRun   = regexp.MustCompile(`([.,;:!?]){2,}`)
)

// Clean normalizes raw text into its canonical form. It never fails; empty
// input yields empty output. The steps are ordered and the order affects
// the result:
//
//  1. collapse whitespace runs (including newlines and tabs) to one space
//  2. strip characters outside alphanumerics, whitespace, and . , ; : ! ? - ' "
//  3. remove whitespace immediately preceding . , ; : ! ?
//  4. collapse runs of two or more punctuation marks down to one
//  5. trim leading and trailing whitespace
//
// Clean is idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := whitespaceRun.ReplaceAllString(raw, " ")
	text = disallowedChars.ReplaceAllString(text, "")
	// Stripping can leave a run of spaces where a symbol stood between
	// two spaces; collapse again so the output carries no whitespace runs
	// and Clean stays idempotent.
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = punctuationRun.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}
