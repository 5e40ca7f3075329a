package preprocessing

import (
	"fmt"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/types"
)

// Split groups sentences into ordered chunks whose joined length stays
// within maxChars. Sentences are accumulated greedily; when adding the next
// sentence would push the joined length (single-space joins) past maxChars
// and the running chunk is non-empty, the chunk is closed and a new one
// started.
//
// overlapSentences must be 0 or 1. With overlap 1, a closed chunk with more
// than one sentence seeds the next chunk with its last sentence, so
// consecutive chunks share exactly one sentence of context.
//
// A single sentence longer than maxChars is emitted alone in its own chunk,
// never truncated or split mid-sentence; no overlap is carried across an
// oversized chunk. The final partial chunk is always emitted. An empty
// sentence sequence yields an empty result.
func Split(sentences []string, maxChars, overlapSentences int) ([]types.Chunk, error) {
	if maxChars <= 0 {
		return nil, fmt.Errorf("%w: chunk budget must be positive, got %d", types.ErrInvalidConfiguration, maxChars)
	}
	if overlapSentences < 0 || overlapSentences > 1 {
		return nil, fmt.Errorf("%w: overlap must be 0 or 1, got %d", types.ErrInvalidConfiguration, overlapSentences)
	}
	if len(sentences) == 0 {
		return nil, nil
	}

	var chunks []types.Chunk
	var current []int
	currentLen := 0

	closeCurrent := func() {
		chunks = append(chunks, buildChunk(sentences, current))
		if overlapSentences == 1 && len(current) > 1 {
			last := current[len(current)-1]
			current = []int{last}
			currentLen = len(sentences[last])
		} else {
			current = nil
			currentLen = 0
		}
	}

	for i, sentence := range sentences {
		if len(sentence) > maxChars {
			// Oversized sentence: kept whole in a chunk of its own.
			if len(current) > 0 {
				chunks = append(chunks, buildChunk(sentences, current))
				current = nil
				currentLen = 0
			}
			chunks = append(chunks, buildChunk(sentences, []int{i}))
			continue
		}

		if len(current) > 0 && currentLen+1+len(sentence) > maxChars {
			closeCurrent()
			// The budget is a hard constraint, overlap is best effort: if
			// the carried sentence plus the incoming one would already
			// exceed the budget, the seed is dropped.
			if len(current) > 0 && currentLen+1+len(sentence) > maxChars {
				current = nil
				currentLen = 0
			}
		}

		if len(current) == 0 {
			current = []int{i}
			currentLen = len(sentence)
		} else {
			current = append(current, i)
			currentLen += 1 + len(sentence)
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, buildChunk(sentences, current))
	}

	return chunks, nil
}

func buildChunk(sentences []string, indices []int) types.Chunk {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = sentences[idx]
	}
	return types.Chunk{
		Text:            strings.Join(parts, " "),
		SentenceIndices: append([]int(nil), indices...),
	}
}
