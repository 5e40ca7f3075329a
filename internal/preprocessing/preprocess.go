package preprocessing

import "strings"

// Document bundles the preprocessing outputs for one raw input.
type Document struct {
	CleanedText   string   `json:"cleaned_text"`
	Sentences     []string `json:"sentences"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// Preprocess runs the full preprocessing pipeline: cleaning followed by
// sentence segmentation, with word and sentence counts for reporting.
func Preprocess(raw string, seg Segmenter) Document {
	cleaned := Clean(raw)
	sentences := seg.Segment(cleaned)
	return Document{
		CleanedText:   cleaned,
		Sentences:     sentences,
		WordCount:     len(strings.Fields(cleaned)),
		SentenceCount: len(sentences),
	}
}
