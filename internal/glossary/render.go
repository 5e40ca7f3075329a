package glossary

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/types"
)

// Render produces the annotated markup for text: each match's surface text
// is wrapped in an inline span carrying the explanation as hover text, and
// all other characters pass through untouched in original order. Matches
// must be sorted by start offset, as produced by Identify.
//
// Overlapping matches are handled last-write-wins in sort order: a match
// starting inside an already-emitted span is rendered from the emitted
// position onward. Nested markup is deliberately not attempted.
//
// Offsets outside the text reject with ErrInvalidInput.
func Render(text string, matches []types.Match) (string, error) {
	if len(matches) == 0 {
		return text, nil
	}

	var sb strings.Builder
	last := 0

	for _, m := range matches {
		if m.Start < 0 || m.End > len(text) || m.End < m.Start {
			return "", fmt.Errorf("%w: match offsets [%d,%d) out of range for text of length %d",
				types.ErrInvalidInput, m.Start, m.End, len(text))
		}
		if m.End <= last {
			// Fully inside an already-emitted span.
			continue
		}

		start := m.Start
		if start < last {
			start = last
		}
		sb.WriteString(text[last:start])
		sb.WriteString(`<span class="legal-term" data-toggle="tooltip" title="`)
		sb.WriteString(html.EscapeString(m.Explanation))
		sb.WriteString(`">`)
		sb.WriteString(text[start:m.End])
		sb.WriteString(`</span>`)
		last = m.End
	}

	sb.WriteString(text[last:])
	return sb.String(), nil
}
