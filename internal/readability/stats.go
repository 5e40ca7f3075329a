// Package readability computes classical readability formulas and maps
// their scores to human-facing interpretation bands.
package readability

import (
	"strings"
	"unicode"
)

// complexWordSyllables is the syllable threshold above which a word counts
// as complex for the Gunning Fog and SMOG formulas.
const complexWordSyllables = 3

// textStats holds the raw counts all formulas are derived from.
type textStats struct {
	words        int // W
	sentences    int // S
	syllables    int // Y
	characters   int // C, letters and digits only
	complexWords int // P, words of >= 3 syllables
}

// gatherStats tokenizes the text once and accumulates every count the
// formulas need.
func gatherStats(text string) textStats {
	var st textStats

	for _, token := range strings.Fields(text) {
		word := strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}

		st.words++
		st.characters += countLettersAndDigits(word)

		syl := countSyllables(word)
		st.syllables += syl
		if syl >= complexWordSyllables {
			st.complexWords++
		}
	}

	st.sentences = countSentences(text)
	return st
}

// countSentences counts sentence terminations: runs of . ! ? delimit
// sentences, and a segment must contain at least one letter or digit to
// count. A text with words but no terminator counts as one sentence.
func countSentences(text string) int {
	count := 0
	hasContent := false

	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if hasContent {
				count++
				hasContent = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasContent = true
		}
	}
	if hasContent {
		count++
	}
	return count
}

func countLettersAndDigits(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// countSyllables estimates the syllable count of a single word using the
// standard vowel-group heuristic: each maximal run of vowels (a, e, i, o,
// u, y) is one syllable, a terminal silent "e" is dropped unless the word
// ends in "le", and every word has at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	var letters []rune
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 1
	}

	syllables := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			syllables++
		}
		prevVowel = v
	}

	// Silent trailing "e": "clause" has two vowel groups but one audible
	// syllable. Words ending in consonant+"le" ("table") keep the count.
	n := len(letters)
	if n >= 3 && letters[n-1] == 'e' && !isVowel(letters[n-2]) {
		if !(letters[n-2] == 'l' && !isVowel(letters[n-3])) && syllables > 1 {
			syllables--
		}
	}

	if syllables < 1 {
		syllables = 1
	}
	return syllables
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
