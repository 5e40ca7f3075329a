// Package types provides type definitions for structured data used throughout the legal-simplifier system.
package types

// Chunk is a bounded contiguous run of whole sentences prepared for a
// size-limited downstream transform.
//
// Invariants maintained by the chunker:
//   - every input sentence index appears in at least one chunk
//   - chunks are emitted in non-decreasing sentence order
//   - len(Text) never exceeds the configured budget unless the chunk holds
//     a single sentence that is itself longer than the budget
//   - with overlap enabled, a forced boundary carries the closing chunk's
//     last sentence as the next chunk's first sentence
type Chunk struct {
	Text            string `json:"text"`
	SentenceIndices []int  `json:"sentence_indices"`
}

// SentenceCount returns the number of sentences in the chunk, including a
// carried overlap sentence.
func (c Chunk) SentenceCount() int {
	return len(c.SentenceIndices)
}

// FirstSentence returns the index of the chunk's first sentence, or -1 for
// an empty chunk.
func (c Chunk) FirstSentence() int {
	if len(c.SentenceIndices) == 0 {
		return -1
	}
	return c.SentenceIndices[0]
}

// LastSentence returns the index of the chunk's last sentence, or -1 for an
// empty chunk.
func (c Chunk) LastSentence() int {
	if len(c.SentenceIndices) == 0 {
		return -1
	}
	return c.SentenceIndices[len(c.SentenceIndices)-1]
}
