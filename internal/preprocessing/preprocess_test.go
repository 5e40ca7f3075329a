package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess(t *testing.T) {
	doc := Preprocess("The  plaintiff   sued .  The defendant won !", NewRuleSegmenter())

	assert.Equal(t, "The plaintiff sued. The defendant won!", doc.CleanedText)
	assert.Equal(t, []string{"The plaintiff sued.", "The defendant won!"}, doc.Sentences)
	assert.Equal(t, 7, doc.WordCount)
	assert.Equal(t, 2, doc.SentenceCount)
}

func TestPreprocessEmpty(t *testing.T) {
	doc := Preprocess("", NewRuleSegmenter())

	assert.Equal(t, "", doc.CleanedText)
	assert.Empty(t, doc.Sentences)
	assert.Zero(t, doc.WordCount)
	assert.Zero(t, doc.SentenceCount)
}
