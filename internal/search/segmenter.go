package search

import (
	"fmt"
	"regexp"
	"strings"
)

// boundaryPattern matches sentence-terminal punctuation followed by
// whitespace. Whether a match is a real boundary is decided by the
// abbreviation guards below.
var boundaryPattern = regexp.MustCompile(`[.?!]\s+`)

var (
	// "e.g. " / "U.S. " shapes: word char, dot, word char, any char.
	dottedAbbrev = regexp.MustCompile(`\w\.\w.$`)
	// "Dr. " / "Mr. " shapes: capital, lowercase, dot.
	titleAbbrev = regexp.MustCompile(`[A-Z][a-z]\.$`)
)

// SplitSentences splits raw document text into trimmed sentences on
// terminal punctuation, skipping boundaries that look like abbreviations or
// initials. This is a heuristic, not a full sentence boundary model; decimal
// numbers and unusual abbreviations may still mis-segment.
func SplitSentences(text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: document is blank", ErrEmptyInput)
	}

	var sentences []string
	start := 0
	for _, loc := range boundaryPattern.FindAllStringIndex(trimmed, -1) {
		// loc[0] is the terminator, cut points after it.
		cut := loc[0] + 1
		if isAbbreviation(trimmed[:cut]) {
			continue
		}
		if s := strings.TrimSpace(trimmed[start:cut]); hasContent(s) {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(trimmed[start:]); hasContent(s) {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: document yields no sentences", ErrEmptyInput)
	}
	return sentences, nil
}

// isAbbreviation reports whether the text ending at a candidate boundary
// looks like an abbreviation or initial rather than a sentence end.
func isAbbreviation(prefix string) bool {
	return dottedAbbrev.MatchString(prefix) || titleAbbrev.MatchString(prefix)
}

// hasContent reports whether a candidate sentence carries any letters or
// digits. Pure punctuation fragments are not sentences.
func hasContent(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}
