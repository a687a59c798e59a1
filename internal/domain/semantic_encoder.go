package domain

import "context"

// EmbeddingDimension is the fixed vector width for the lifetime of a corpus.
// Changing the embedding model requires re-ingesting the full corpus.
const EmbeddingDimension = 384

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// EmbeddingBatch is the result of vectorizing a batch of texts in one call.
// Vectors preserve the order of the input texts.
type EmbeddingBatch struct {
	Vectors     [][]float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeCorpus generates semantic vectors for a batch of corpus texts
	// in a single call, preserving input order.
	VectorizeCorpus(ctx context.Context, model string, texts []string) (EmbeddingBatch, error)
	// VectorizeQuery generates a semantic vector for one user query.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
