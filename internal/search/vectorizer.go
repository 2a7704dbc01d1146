package search

import (
	"math"
)

// Embedder turns text units into dense vectors over a shared vocabulary.
// BuildVocabulary must run once, over the full corpus of a call, before any
// Embed; implementations are single-call state and not safe for reuse across
// documents.
type Embedder interface {
	BuildVocabulary(sentences, keywords []string)
	Embed(text string) ([]float64, error)
}

// TFIDFEmbedder implements Term Frequency - Inverse Document Frequency
// embeddings with log-scaled term frequency and L2 normalization.
type TFIDFEmbedder struct {
	Vocabulary map[string]int
	IDF        map[string]float64
	built      bool
}

func NewTFIDFEmbedder() *TFIDFEmbedder {
	return &TFIDFEmbedder{
		Vocabulary: make(map[string]int),
		IDF:        make(map[string]float64),
	}
}

// BuildVocabulary indexes every unique term of the combined corpus (sentences
// then keywords, each element counting as one document for df purposes) in
// first-appearance order, and computes IDF weights. The vocabulary is frozen
// once built.
func (e *TFIDFEmbedder) BuildVocabulary(sentences, keywords []string) {
	corpus := make([]string, 0, len(sentences)+len(keywords))
	corpus = append(corpus, sentences...)
	corpus = append(corpus, keywords...)

	docFreq := make(map[string]int)
	for _, text := range corpus {
		for _, term := range Tokenize(text) {
			docFreq[term]++
			if _, exists := e.Vocabulary[term]; !exists {
				e.Vocabulary[term] = len(e.Vocabulary)
			}
		}
	}

	// idf = ln(N / (1 + df)) + 1, strictly positive even for terms present
	// in every corpus element
	total := float64(len(corpus))
	for term, df := range docFreq {
		e.IDF[term] = math.Log(total/(1+float64(df))) + 1
	}
	e.built = true
}

// Embed converts text into a unit-length TF-IDF vector over the built
// vocabulary. Terms outside the vocabulary are ignored; text with no
// recognized terms embeds as the all-zero vector.
func (e *TFIDFEmbedder) Embed(text string) ([]float64, error) {
	if !e.built {
		return nil, ErrVocabularyNotBuilt
	}

	vector := make([]float64, len(e.Vocabulary))
	for term, count := range TokenizeCounts(text) {
		idx, exists := e.Vocabulary[term]
		if !exists {
			continue
		}
		tf := 1 + math.Log(float64(count))
		vector[idx] = tf * e.IDF[term]
	}

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector, nil
}
