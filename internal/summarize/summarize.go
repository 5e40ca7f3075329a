// Package summarize condenses legal documents through the generative
// transform boundary, using map-reduce chunking for inputs beyond the
// context budget.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/llm"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/types"
)

// DefaultChunkChars is the per-chunk character budget for chunked
// summarization. Summaries tolerate larger chunks than simplification
// because the output is much shorter than the input.
const DefaultChunkChars = 800

const (
	summaryPrompt      = "Summarize the following legal text in plain language, keeping every obligation and deadline:\n\n"
	chunkSummaryPrompt = "Summarize this portion of a legal document in two or three sentences:\n\n"
	combinePrompt      = "Combine the following partial summaries of one legal document into a single coherent summary:\n\n"
)

// Text summarizes a text that already fits the context budget.
func Text(ctx context.Context, client llm.Client, text string) (string, error) {
	out, err := client.GenerateContent(ctx, summaryPrompt+text, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("summarization: %w", err)
	}
	return llm.CleanResponseText(out), nil
}

// LongText summarizes text of any length. A single chunk is summarized
// directly; multiple chunks are each summarized in document order, then the
// partial summaries are combined and summarized once more. Chunking policy
// is shared with simplification; only the budget differs.
func LongText(ctx context.Context, client llm.Client, text string, seg preprocessing.Segmenter, maxChunkChars int) (string, error) {
	if maxChunkChars == 0 {
		maxChunkChars = DefaultChunkChars
	}
	if maxChunkChars < 0 {
		return "", fmt.Errorf("%w: chunk budget must be positive, got %d", types.ErrInvalidConfiguration, maxChunkChars)
	}

	chunks, err := preprocessing.Split(seg.Segment(text), maxChunkChars, 1)
	if err != nil {
		return "", err
	}

	switch len(chunks) {
	case 0:
		return "", nil
	case 1:
		return Text(ctx, client, chunks[0].Text)
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		// On cancellation the already-summarized chunks are returned
		// alongside the error.
		if err := ctx.Err(); err != nil {
			return strings.Join(partials, " "), err
		}
		out, err := client.GenerateContent(ctx, chunkSummaryPrompt+chunk.Text, llm.TierLite)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		partials = append(partials, llm.CleanResponseText(out))
	}

	combined, err := client.GenerateContent(ctx, combinePrompt+strings.Join(partials, " "), llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("combining summaries: %w", err)
	}
	return llm.CleanResponseText(combined), nil
}
