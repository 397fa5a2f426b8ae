package modelrunner

// EmbeddingsRequest represents the request payload for the embeddings endpoint.
type EmbeddingsRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"` // string or []string
}

// EmbeddingsUsage represents the token usage for embeddings
type EmbeddingsUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// EmbeddingData represents a single embedding
type EmbeddingData struct {
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
	Object    string    `json:"object"`
}

// EmbeddingsResponse represents the response from the embeddings endpoint.
type EmbeddingsResponse struct {
	Model  string          `json:"model"`
	Object string          `json:"object"`
	Usage  EmbeddingsUsage `json:"usage"`
	Data   []EmbeddingData `json:"data"`
}

// ClassifyRequest represents the request payload for the classifier endpoint.
// The classifier consumes a pre-computed utterance embedding, not raw text.
type ClassifyRequest struct {
	Model     string    `json:"model"`
	Embedding []float64 `json:"embedding"`
}

// ClassPrediction represents a single class with its probability.
type ClassPrediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// ClassifyResponse represents the response from the classifier endpoint.
// Predictions are ordered by probability, highest first.
type ClassifyResponse struct {
	Model       string            `json:"model"`
	Predictions []ClassPrediction `json:"predictions"`
}
