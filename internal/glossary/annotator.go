package glossary

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/legal-simplifier/internal/types"
)

// Identify locates every dictionary term in text and returns the matches
// sorted by start offset. Matching is case-insensitive and bounded by word
// boundaries: a match may not be adjacent to a letter, digit, or underscore
// on either side, which lets multi-word keys such as "force majeure" match
// as contiguous phrases while "tort" stays out of "tortoise".
//
// Every key is scanned independently, so overlapping matches from different
// keys are all retained. Ties at the same start offset are resolved by
// scanning keys longest-first, then lexicographically, which keeps results
// stable across runs. An empty dictionary yields no matches.
func Identify(text string, dictionary map[string]string) []types.Match {
	if text == "" || len(dictionary) == 0 {
		return nil
	}

	var matches []types.Match
	for _, term := range orderedKeys(dictionary) {
		key := strings.ToLower(term)
		if key == "" {
			continue
		}
		for _, start := range occurrences(text, key) {
			end := start + len(key)
			matches = append(matches, types.Match{
				SurfaceText: text[start:end],
				Explanation: dictionary[term],
				Start:       start,
				End:         end,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}

// orderedKeys returns dictionary keys longest-first, ties broken
// lexicographically.
func orderedKeys(dictionary map[string]string) []string {
	keys := make([]string, 0, len(dictionary))
	for key := range dictionary {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// occurrences returns the byte offsets of every word-bounded,
// case-insensitive occurrence of key in text. Keys are ASCII terms, so the
// comparison folds ASCII case byte-wise and offsets always index the
// original text.
func occurrences(text, key string) []int {
	var offsets []int
	limit := len(text) - len(key)

	for i := 0; i <= limit; i++ {
		if !foldEqualAt(text, key, i) {
			continue
		}
		if !boundaryBefore(text, i) || !boundaryAfter(text, i+len(key)) {
			continue
		}
		offsets = append(offsets, i)
	}
	return offsets
}

// foldEqualAt reports whether text[i:i+len(key)] equals key under ASCII
// case folding.
func foldEqualAt(text, key string, i int) bool {
	for k := 0; k < len(key); k++ {
		if asciiLower(text[i+k]) != key[k] {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// boundaryBefore reports whether position i is not preceded by a word rune.
func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

// boundaryAfter reports whether position i is not followed by a word rune.
func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
