package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"the", 1},
		{"clause", 1},
		{"force", 1},
		{"apple", 2},
		{"table", 2},
		{"plaintiff", 2},
		{"majeure", 2},
		{"readable", 3},
		{"jurisdiction", 4},
		{"indemnification", 6},
		{"a", 1},
		{"rhythm", 1},
		{"1099", 1}, // no letters, floor of one syllable
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, countSyllables(tt.word))
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"single terminated", "The claim failed.", 1},
		{"multiple terminators", "One. Two! Three?", 3},
		{"run of terminators counts once", "Wait... what?", 2},
		{"unterminated trailing text", "First. second half", 2},
		{"terminators with no content", "...", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countSentences(tt.text))
		})
	}
}

func TestGatherStats(t *testing.T) {
	// "The court awarded damages." -> 4 words, 1 sentence.
	// Syllables: the=1, court=1, awarded=3, damages=3. Characters: 3+5+7+7.
	st := gatherStats("The court awarded damages.")

	assert.Equal(t, 4, st.words)
	assert.Equal(t, 1, st.sentences)
	assert.Equal(t, 8, st.syllables)
	assert.Equal(t, 22, st.characters)
	assert.Equal(t, 2, st.complexWords)
}

func TestGatherStatsSkipsBarePunctuation(t *testing.T) {
	st := gatherStats("yes - no.")

	assert.Equal(t, 2, st.words)
	assert.Equal(t, 1, st.sentences)
}
