package search

import (
	"fmt"
	"strings"
)

const (
	DefaultTopKeywords  = 3
	DefaultTopSentences = 1
)

// Options configure one matching call. Zero or negative values fall back to
// the defaults.
type Options struct {
	TopKeywords  int
	TopSentences int
}

func (o Options) withDefaults() Options {
	if o.TopKeywords <= 0 {
		o.TopKeywords = DefaultTopKeywords
	}
	if o.TopSentences <= 0 {
		o.TopSentences = DefaultTopSentences
	}
	return o
}

// Matcher ranks a fixed keyword vocabulary against arbitrary documents.
// The keyword list is copied at construction and never mutated, so one
// Matcher is safe for concurrent Match calls; every call builds its own
// embedder state.
type Matcher struct {
	keywords    []string
	newEmbedder func() Embedder
}

// NewMatcher creates a matcher over the given keyword list using TF-IDF
// embeddings.
func NewMatcher(keywords []string) *Matcher {
	return NewMatcherWithEmbedder(keywords, func() Embedder {
		return NewTFIDFEmbedder()
	})
}

// NewMatcherWithEmbedder creates a matcher with a custom embedder factory.
// The factory is invoked once per Match call so vocabulary state is never
// shared across documents.
func NewMatcherWithEmbedder(keywords []string, newEmbedder func() Embedder) *Matcher {
	kws := make([]string, len(keywords))
	copy(kws, keywords)
	return &Matcher{
		keywords:    kws,
		newEmbedder: newEmbedder,
	}
}

// Keywords returns a copy of the configured keyword vocabulary.
func (m *Matcher) Keywords() []string {
	kws := make([]string, len(m.keywords))
	copy(kws, m.keywords)
	return kws
}

// Match runs the full pipeline synchronously: segment the document, build a
// fresh vocabulary over sentences and keywords, embed both sides, and rank.
func (m *Matcher) Match(text string, opts Options) (*SearchResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document is blank", ErrEmptyInput)
	}

	sentences, err := SplitSentences(text)
	if err != nil {
		return nil, err
	}

	embedder := m.newEmbedder()
	embedder.BuildVocabulary(sentences, m.keywords)

	sentenceVectors := make([][]float64, len(sentences))
	for i, sentence := range sentences {
		if sentenceVectors[i], err = embedder.Embed(sentence); err != nil {
			return nil, fmt.Errorf("failed to embed sentence: %w", err)
		}
	}

	keywordVectors := make([][]float64, len(m.keywords))
	for i, keyword := range m.keywords {
		if keywordVectors[i], err = embedder.Embed(keyword); err != nil {
			return nil, fmt.Errorf("failed to embed keyword: %w", err)
		}
	}

	opts = opts.withDefaults()
	return Rank(sentences, sentenceVectors, m.keywords, keywordVectors, opts.TopKeywords, opts.TopSentences)
}
