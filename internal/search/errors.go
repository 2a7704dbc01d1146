package search

import "errors"

var (
	// ErrEmptyInput signals a blank document or one that yields no sentences.
	ErrEmptyInput = errors.New("empty input")
	// ErrDimensionMismatch signals a similarity computation between vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrVocabularyNotBuilt signals an embedding attempt before BuildVocabulary.
	ErrVocabularyNotBuilt = errors.New("vocabulary not built")
)
