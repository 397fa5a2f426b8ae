package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder maps text into the embedding space shared with the
// knowledge corpus. Encoding is deterministic for a given model version.
type SemanticEncoder interface {
	// EncodeQuery generates a semantic vector for one utterance.
	EncodeQuery(ctx context.Context, text string) (EmbeddingVector, error)
	// EncodeBatch generates semantic vectors for a batch of texts, one
	// vector per input in order.
	EncodeBatch(ctx context.Context, texts []string) ([]EmbeddingVector, error)
}
