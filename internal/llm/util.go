// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanResponseText strips markdown code fences and surrounding whitespace
// from a generated response. Models occasionally fence plain-text output
// even when instructed not to.
func CleanResponseText(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	return strings.TrimSpace(text)
}
