// Package simplify rewrites legal prose into plainer language through the
// generative transform boundary. Long inputs are chunked so every call
// stays within the downstream context budget.
package simplify

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/llm"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/types"
)

// Level selects how aggressively the text is simplified.
type Level string

// Simplification levels, from most to least aggressive.
const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// DefaultChunkChars is the per-chunk character budget for chunked
// simplification.
const DefaultChunkChars = 400

// prompts maps each level to its instruction preamble.
var prompts = map[Level]string{
	LevelBasic:        "Simplify the following legal text into very simple English that a 10-year-old can understand:\n\n",
	LevelIntermediate: "Simplify the following legal text into plain English:\n\n",
	LevelAdvanced:     "Rewrite the following legal text in clearer, more accessible language:\n\n",
}

// tiers maps each level to the model tier whose temperament fits it.
var tiers = map[Level]llm.ModelTier{
	LevelBasic:        llm.TierLite,
	LevelIntermediate: llm.TierStandard,
	LevelAdvanced:     llm.TierAdvanced,
}

// Valid reports whether l is a known simplification level.
func (l Level) Valid() bool {
	_, ok := prompts[l]
	return ok
}

// Options configures chunked simplification.
type Options struct {
	Level            Level
	MaxChunkChars    int
	OverlapSentences int
}

// DefaultOptions returns the standard chunked-simplification settings.
func DefaultOptions() Options {
	return Options{
		Level:            LevelIntermediate,
		MaxChunkChars:    DefaultChunkChars,
		OverlapSentences: 1,
	}
}

// Text simplifies a single text that already fits the context budget.
func Text(ctx context.Context, client llm.Client, text string, level Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: unknown simplification level %q", types.ErrInvalidConfiguration, level)
	}

	out, err := client.GenerateContent(ctx, prompts[level]+text, tiers[level])
	if err != nil {
		return "", fmt.Errorf("simplification: %w", err)
	}
	return llm.CleanResponseText(out), nil
}

// LongText simplifies text of any length: sentences are chunked within
// opts.MaxChunkChars, each chunk is simplified strictly in document order,
// and the outputs are joined in the same order. The context is checked
// before each chunk's call, so cancellation takes effect between chunks
// while already-completed chunk results are discarded with the error.
func LongText(ctx context.Context, client llm.Client, text string, seg preprocessing.Segmenter, opts Options) (string, error) {
	if !opts.Level.Valid() {
		return "", fmt.Errorf("%w: unknown simplification level %q", types.ErrInvalidConfiguration, opts.Level)
	}
	if opts.MaxChunkChars == 0 {
		opts.MaxChunkChars = DefaultChunkChars
	}

	chunks, err := preprocessing.Split(seg.Segment(text), opts.MaxChunkChars, opts.OverlapSentences)
	if err != nil {
		return "", err
	}

	simplified := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		// On cancellation the outputs of already-simplified chunks are
		// returned alongside the error.
		if err := ctx.Err(); err != nil {
			return strings.Join(simplified, " "), err
		}
		out, err := Text(ctx, client, chunk.Text, opts.Level)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", len(simplified)+1, len(chunks), err)
		}
		simplified = append(simplified, out)
	}

	return strings.Join(simplified, " "), nil
}
