package simplify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/legal-simplifier/internal/llm"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/types"
)

// fakeClient records prompts and replies with a canned transform.
type fakeClient struct {
	prompts []string
	tiers   []llm.ModelTier
	reply   func(prompt string) string
	err     error
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	if f.reply != nil {
		return f.reply(prompt), nil
	}
	return "simplified", nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestTextBuildsLevelPrompt(t *testing.T) {
	client := &fakeClient{}

	out, err := Text(context.Background(), client, "hereinafter the party", LevelBasic)
	require.NoError(t, err)
	assert.Equal(t, "simplified", out)

	require.Len(t, client.prompts, 1)
	assert.True(t, strings.HasPrefix(client.prompts[0], "Simplify the following legal text into very simple English"))
	assert.True(t, strings.HasSuffix(client.prompts[0], "hereinafter the party"))
	assert.Equal(t, llm.TierLite, client.tiers[0])
}

func TestTextRejectsUnknownLevel(t *testing.T) {
	client := &fakeClient{}

	_, err := Text(context.Background(), client, "text", Level("extreme"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidConfiguration)
	assert.Empty(t, client.prompts, "no generation call on invalid configuration")
}

func TestTextWrapsGenerationFailure(t *testing.T) {
	genErr := &llm.GenerationError{Model: "fake", Message: "quota"}
	client := &fakeClient{err: genErr}

	_, err := Text(context.Background(), client, "text", LevelIntermediate)
	require.Error(t, err)
	assert.True(t, llm.IsGenerationError(err))
}

func TestLongTextChunksInDocumentOrder(t *testing.T) {
	// Three sentences, budget forces multiple chunks; outputs must come
	// back concatenated in document order.
	sentences := []string{
		"Alpha clause one is long enough to fill a chunk on its own here.",
		"Beta clause two is long enough to fill a chunk on its own here too.",
		"Gamma clause three closes the document with its own full chunk.",
	}
	text := strings.Join(sentences, " ")

	client := &fakeClient{reply: func(prompt string) string {
		switch {
		case strings.Contains(prompt, "Alpha"):
			return "A"
		case strings.Contains(prompt, "Beta"):
			return "B"
		default:
			return "G"
		}
	}}

	opts := Options{Level: LevelIntermediate, MaxChunkChars: 80, OverlapSentences: 0}
	out, err := LongText(context.Background(), client, text, preprocessing.NewRuleSegmenter(), opts)
	require.NoError(t, err)
	assert.Equal(t, "A B G", out)
	assert.Len(t, client.prompts, 3)
}

func TestLongTextAbortsOnChunkFailure(t *testing.T) {
	client := &fakeClient{err: &llm.GenerationError{Message: "unavailable"}}

	opts := DefaultOptions()
	_, err := LongText(context.Background(), client, "One sentence. Another sentence.", preprocessing.NewRuleSegmenter(), opts)
	require.Error(t, err)
	assert.True(t, llm.IsGenerationError(err))
}

func TestLongTextHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{}
	_, err := LongText(ctx, client, "One sentence here. Another one there.", preprocessing.NewRuleSegmenter(), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, client.prompts, "no chunk call after cancellation")
}

func TestLongTextEmptyInput(t *testing.T) {
	client := &fakeClient{}

	out, err := LongText(context.Background(), client, "", preprocessing.NewRuleSegmenter(), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, client.prompts)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, LevelIntermediate, opts.Level)
	assert.Equal(t, DefaultChunkChars, opts.MaxChunkChars)
	assert.Equal(t, 1, opts.OverlapSentences)
}

func TestLevelValid(t *testing.T) {
	assert.True(t, LevelBasic.Valid())
	assert.True(t, LevelIntermediate.Valid())
	assert.True(t, LevelAdvanced.Valid())
	assert.False(t, Level("").Valid())
	assert.False(t, Level("legalese").Valid())
}
