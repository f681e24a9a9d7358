package domain

import "errors"

var (
	// ErrRecordNotFound signals a missing mock record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrCorpusNotLoaded signals that no FAQ corpus snapshot is published yet.
	ErrCorpusNotLoaded = errors.New("faq corpus not loaded")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationProviderError signals a generation provider failure.
	ErrGenerationProviderError = errors.New("generation provider error")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
)
