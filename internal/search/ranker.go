package search

import (
	"fmt"
	"math"
	"sort"
)

// RankedKeyword is one entry in the final keyword ranking.
type RankedKeyword struct {
	Keyword      string  `json:"keyword"`
	Score        float64 `json:"score"`
	BestSentence string  `json:"best_sentence"`
}

// KeywordDetail retains a keyword's top supporting sentences and their scores,
// best first.
type KeywordDetail struct {
	Sentences []string  `json:"sentences"`
	Scores    []float64 `json:"scores"`
}

// SearchResult is the final output of one matching call.
type SearchResult struct {
	Ranked    []RankedKeyword          `json:"ranked"`
	Details   map[string]KeywordDetail `json:"details"`
	Sentences []string                 `json:"sentences"`
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// A zero vector on either side scores 0. Vectors of different lengths are a
// dimension mismatch error.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

type sentenceScore struct {
	sentence string
	score    float64
}

// Rank scores every keyword against every sentence, keeps the top
// topSentences supporting sentences per keyword, and ranks keywords overall
// by their best score, keeping the top topKeywords. Sorting is stable, so
// score ties preserve input order: document order for sentences, vocabulary
// order for keywords. Limits larger than the available counts clamp without
// padding.
func Rank(sentences []string, sentenceVectors [][]float64, keywords []string, keywordVectors [][]float64, topKeywords, topSentences int) (*SearchResult, error) {
	details := make(map[string]KeywordDetail, len(keywords))
	overall := make([]RankedKeyword, 0, len(keywords))

	for k, keyword := range keywords {
		scores := make([]sentenceScore, len(sentences))
		for s := range sentences {
			similarity, err := CosineSimilarity(keywordVectors[k], sentenceVectors[s])
			if err != nil {
				return nil, err
			}
			scores[s] = sentenceScore{sentence: sentences[s], score: similarity}
		}

		sort.SliceStable(scores, func(i, j int) bool {
			return scores[i].score > scores[j].score
		})
		if topSentences < len(scores) {
			scores = scores[:topSentences]
		}

		detail := KeywordDetail{
			Sentences: make([]string, len(scores)),
			Scores:    make([]float64, len(scores)),
		}
		for i, ss := range scores {
			detail.Sentences[i] = ss.sentence
			detail.Scores[i] = ss.score
		}
		details[keyword] = detail

		if len(scores) > 0 {
			overall = append(overall, RankedKeyword{
				Keyword:      keyword,
				Score:        scores[0].score,
				BestSentence: scores[0].sentence,
			})
		}
	}

	sort.SliceStable(overall, func(i, j int) bool {
		return overall[i].Score > overall[j].Score
	})
	if topKeywords < len(overall) {
		overall = overall[:topKeywords]
	}

	return &SearchResult{
		Ranked:    overall,
		Details:   details,
		Sentences: sentences,
	}, nil
}
