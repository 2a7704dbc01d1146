package search

import (
	"strings"
)

// Tokenize splits text into normalized terms, keeping the first occurrence of
// each unique term in order of appearance.
func Tokenize(text string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, field := range splitTerms(text) {
		if !seen[field] {
			seen[field] = true
			terms = append(terms, field)
		}
	}
	return terms
}

// TokenizeCounts returns term frequencies for the normalized terms of text.
func TokenizeCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, field := range splitTerms(text) {
		counts[field]++
	}
	return counts
}

// splitTerms lowercases text, replaces anything outside [a-z0-9] and
// whitespace with a space, splits on whitespace and drops single-character
// fragments. No stemming, no stop words.
func splitTerms(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '\t', r == '\n', r == '\r':
			return r
		default:
			return ' '
		}
	}, text)

	var tokens []string
	for _, field := range strings.Fields(mapped) {
		if len(field) > 1 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
