package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

// Encoder adapts APIClient to the domain.SemanticEncoder interface.
type Encoder struct {
	client APIClient
	model  string
}

// NewEncoder creates a new Encoder.
func NewEncoder(client APIClient, model string) Encoder {
	return Encoder{
		client: client,
		model:  model,
	}
}

// EncodeQuery generates a semantic vector for one utterance.
func (e Encoder) EncodeQuery(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := e.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: e.model,
		Input: text,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}

	if len(resp.Data) == 0 {
		err := errors.New("no embedding in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// EncodeBatch generates semantic vectors for a batch of texts, one vector per
// input in order.
func (e Encoder) EncodeBatch(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: e.model,
		Input: texts,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(resp.Data) != len(texts) {
		err := fmt.Errorf("embedding count mismatch: requested %d, got %d", len(texts), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	data := make([]EmbeddingData, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([]domain.EmbeddingVector, len(data))
	for i, d := range data {
		vectors[i] = domain.EmbeddingVector{
			Vector:      d.Embedding,
			TotalTokens: resp.Usage.TotalTokens / len(data),
		}
	}
	return vectors, nil
}

// InitEncoder initializes the SemanticEncoder dependency.
type InitEncoder struct {
	HttpClient     *http.Client `resolve:""`
	ModelRunnerURL string       `config:"MODEL_RUNNER_URL"`
	EmbeddingModel string       `config:"EMBEDDING_MODEL" default:"ai/embeddinggemma"`
}

// Initialize registers the SemanticEncoder in the dependency container.
func (i InitEncoder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SemanticEncoder](NewEncoder(
		NewAPIClient(i.ModelRunnerURL, "", i.HttpClient),
		i.EmbeddingModel,
	))
	return ctx, nil
}
