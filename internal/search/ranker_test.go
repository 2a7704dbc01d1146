package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/keyword-engine/backend/internal/search"
)

func TestCosineSimilarity(t *testing.T) {
	vecA := []float64{1, 0, 1}
	vecB := []float64{0, 1, 1}

	// Dot product 1, both norms sqrt(2) -> 0.5
	score, err := search.CosineSimilarity(vecA, vecB)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(score-0.5) > 1e-9 {
		t.Errorf("Expected similarity 0.5, got %f", score)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	score, err := search.CosineSimilarity([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for zero vector, got %f", score)
	}
}

func TestCosineSimilarityBounds(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {1, 2, 3}},
		{{1, 0}, {-1, 0}},
		{{0.3, -0.7}, {5, 2}},
	}
	for _, pair := range pairs {
		score, err := search.CosineSimilarity(pair[0], pair[1])
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if score < -1.0-1e-9 || score > 1.0+1e-9 {
			t.Errorf("Similarity %f out of [-1, 1]", score)
		}
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := search.CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, search.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRankSelectsBestSentencePerKeyword(t *testing.T) {
	sentences := []string{"s1", "s2"}
	sentenceVectors := [][]float64{
		{1, 0},
		{0, 1},
	}
	keywords := []string{"k1", "k2"}
	keywordVectors := [][]float64{
		{0, 1}, // matches s2
		{1, 0}, // matches s1
	}

	result, err := search.Rank(sentences, sentenceVectors, keywords, keywordVectors, 10, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Details["k1"].Sentences[0] != "s2" {
		t.Errorf("Expected k1 to match s2, got %s", result.Details["k1"].Sentences[0])
	}
	if result.Details["k2"].Sentences[0] != "s1" {
		t.Errorf("Expected k2 to match s1, got %s", result.Details["k2"].Sentences[0])
	}
}

func TestRankClampsLimits(t *testing.T) {
	sentences := []string{"s1"}
	sentenceVectors := [][]float64{{1}}
	keywords := []string{"k1", "k2"}
	keywordVectors := [][]float64{{1}, {1}}

	result, err := search.Rank(sentences, sentenceVectors, keywords, keywordVectors, 100, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result.Ranked) != 2 {
		t.Errorf("Expected 2 ranked keywords, got %d", len(result.Ranked))
	}
	for keyword, detail := range result.Details {
		if len(detail.Sentences) != 1 {
			t.Errorf("Keyword %s: expected 1 supporting sentence, got %d", keyword, len(detail.Sentences))
		}
	}
}

func TestRankStableTieBreak(t *testing.T) {
	// All scores identical, so input order must be preserved.
	sentences := []string{"s1", "s2", "s3"}
	sentenceVectors := [][]float64{{1}, {1}, {1}}
	keywords := []string{"k1", "k2", "k3"}
	keywordVectors := [][]float64{{1}, {1}, {1}}

	result, err := search.Rank(sentences, sentenceVectors, keywords, keywordVectors, 3, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, want := range []string{"k1", "k2", "k3"} {
		if result.Ranked[i].Keyword != want {
			t.Errorf("At rank %d: expected %s, got %s", i, want, result.Ranked[i].Keyword)
		}
	}
	detail := result.Details["k1"]
	if detail.Sentences[0] != "s1" || detail.Sentences[1] != "s2" {
		t.Errorf("Expected document order on ties, got %v", detail.Sentences)
	}
}

func TestRankOrdersByScore(t *testing.T) {
	sentences := []string{"s1"}
	sentenceVectors := [][]float64{{1, 0}}
	keywords := []string{"weak", "strong"}
	keywordVectors := [][]float64{
		{0.5, math.Sqrt(0.75)}, // cos = 0.5 against s1
		{1, 0},                 // cos = 1.0 against s1
	}

	result, err := search.Rank(sentences, sentenceVectors, keywords, keywordVectors, 2, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Ranked[0].Keyword != "strong" {
		t.Errorf("Expected strong first, got %s", result.Ranked[0].Keyword)
	}
	if result.Ranked[0].Score <= result.Ranked[1].Score {
		t.Errorf("Expected descending scores, got %v then %v", result.Ranked[0].Score, result.Ranked[1].Score)
	}
}
