package preprocessing

import (
	"strings"
	"unicode"
)

// Segmenter is the sentence segmentation boundary. Implementations must
// return sentences in document order, must not drop or reorder content, and
// must exclude whitespace-only sentences.
type Segmenter interface {
	Segment(text string) []string
}

// RuleSegmenter is a rule-based Segmenter that splits on terminal
// punctuation with guards for common abbreviations and decimal numbers. It
// stands in for an external NLP collaborator behind the same contract.
type RuleSegmenter struct {
	abbreviations map[string]struct{}
}

// defaultAbbreviations lists period-terminated tokens that do not end a
// sentence, lowercased without the trailing period. The set skews toward
// legal prose (citations, entity suffixes).
var defaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "jr", "sr", "st",
	"vs", "v", "etc", "e.g", "i.e", "cf", "al",
	"no", "nos", "sec", "secs", "art", "para", "fig",
	"inc", "corp", "ltd", "llc", "llp", "co",
	"u.s", "u.k", "a.m", "p.m",
}

// NewRuleSegmenter returns a segmenter with the default abbreviation set.
func NewRuleSegmenter() *RuleSegmenter {
	abbrevs := make(map[string]struct{}, len(defaultAbbreviations))
	for _, a := range defaultAbbreviations {
		abbrevs[a] = struct{}{}
	}
	return &RuleSegmenter{abbreviations: abbrevs}
}

// Segment splits text into an ordered sequence of sentences. A period ends
// a sentence only when it is not part of a known abbreviation or a number
// and is followed by whitespace or end of input. '!' and '?' always end a
// sentence when followed by whitespace or end of input.
func (s *RuleSegmenter) Segment(text string) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Terminal punctuation must be followed by whitespace or EOF.
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && s.isAbbreviation(current.String()) {
			continue
		}
		flush()
	}
	flush()

	return sentences
}

// isAbbreviation reports whether the text accumulated so far ends in an
// abbreviation token rather than a true sentence terminator.
func (s *RuleSegmenter) isAbbreviation(accumulated string) bool {
	trimmed := strings.TrimSuffix(accumulated, ".")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	// Single letters ("J. Smith", "U. S. Code") never end a sentence.
	if len(last) == 1 && unicode.IsLetter(rune(last[0])) {
		return true
	}
	_, ok := s.abbreviations[last]
	return ok
}
