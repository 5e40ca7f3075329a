package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSegmenterSegment(t *testing.T) {
	seg := NewRuleSegmenter()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single sentence",
			input:    "The defendant breached the covenant.",
			expected: []string{"The defendant breached the covenant."},
		},
		{
			name:  "multiple terminators",
			input: "Is this valid? It is not! The court agreed.",
			expected: []string{
				"Is this valid?",
				"It is not!",
				"The court agreed.",
			},
		},
		{
			name:  "abbreviations do not split",
			input: "See Sec. 12 of the act. Smith v. Jones controls.",
			expected: []string{
				"See Sec. 12 of the act.",
				"Smith v. Jones controls.",
			},
		},
		{
			name:  "single letter initials do not split",
			input: "Judge J. Smith presided. The appeal failed.",
			expected: []string{
				"Judge J. Smith presided.",
				"The appeal failed.",
			},
		},
		{
			name:     "decimal numbers do not split",
			input:    "The rate is 3.5 percent per annum.",
			expected: []string{"The rate is 3.5 percent per annum."},
		},
		{
			name:     "trailing text without terminator",
			input:    "First sentence. trailing fragment",
			expected: []string{"First sentence.", "trailing fragment"},
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, seg.Segment(tt.input))
		})
	}
}

func TestRuleSegmenterPreservesOrder(t *testing.T) {
	seg := NewRuleSegmenter()
	input := "Alpha one. Beta two. Gamma three. Delta four."

	got := seg.Segment(input)
	assert.Equal(t, []string{"Alpha one.", "Beta two.", "Gamma three.", "Delta four."}, got)
}
