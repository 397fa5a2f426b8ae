package nlu

import (
	"context"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

// SemanticMatcher resolves an utterance against the embedded knowledge
// corpus by nearest-neighbor search.
type SemanticMatcher struct {
	encoder domain.SemanticEncoder
	index   *EmbeddingIndex
}

// NewSemanticMatcher creates a new SemanticMatcher.
func NewSemanticMatcher(encoder domain.SemanticEncoder, index *EmbeddingIndex) SemanticMatcher {
	return SemanticMatcher{encoder: encoder, index: index}
}

// Match encodes the utterance and returns up to topK corpus hits, best score
// first, along with the query embedding for downstream escalation stages.
func (m SemanticMatcher) Match(ctx context.Context, text string, topK int) ([]SemanticHit, []float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embedding, err := m.encoder.EncodeQuery(spanCtx, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, nil, err
	}

	RecordEmbeddingTokens(spanCtx, embedding.TotalTokens)

	return m.index.Search(embedding.Vector, topK), embedding.Vector, nil
}
