package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.NotEmpty(t, config.GetModel(TierLite))
	assert.NotEmpty(t, config.GetModel(TierStandard))
	assert.NotEmpty(t, config.GetModel(TierAdvanced))
}

func TestGetModelFallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}

	// Unknown tier falls back through standard to lite.
	assert.Equal(t, "lite-model", config.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Empty(t, empty.GetModel(TierStandard))
}

func TestGetTemperature(t *testing.T) {
	config := DefaultConfig()

	assert.InDelta(t, 0.7, config.GetTemperature(TierLite), 0.001)
	assert.InDelta(t, 0.3, config.GetTemperature(TierAdvanced), 0.001)

	// Unconfigured tier gets the moderate default.
	bare := &Config{Provider: ProviderGemini}
	assert.InDelta(t, 0.5, bare.GetTemperature(TierStandard), 0.001)
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "custom-model")

	assert.Equal(t, "custom-model", custom.GetModel(TierStandard))
	// Original config is not mutated.
	assert.NotEqual(t, "custom-model", base.GetModel(TierStandard))
	// Other tiers are carried over.
	assert.Equal(t, base.GetModel(TierLite), custom.GetModel(TierLite))
}

func TestCleanResponseText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "simplified text", "simplified text"},
		{"surrounding whitespace", "  simplified text \n", "simplified text"},
		{"generic fence", "```\nsimplified text\n```", "simplified text"},
		{"fence with language", "```text\nsimplified text\n```", "simplified text"},
		{"no fence terminator", "```\nsimplified text", "simplified text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanResponseText(tt.input))
		})
	}
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &GenerationError{Model: "m", Message: "boom", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsGenerationError(err))
	assert.False(t, IsGenerationError(assert.AnError))
	assert.Contains(t, err.Error(), "boom")
}
