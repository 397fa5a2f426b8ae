package nlu

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

var (
	meter               = otel.Meter("nlu")
	EmbeddingTokensUsed metric.Int64Counter
	IntentsResolved     metric.Int64Counter
)

func init() {
	var err error
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	IntentsResolved, err = meter.Int64Counter(
		"intents_resolved_total",
		metric.WithDescription("Total intents resolved by cascade stage"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingTokens records the number of tokens consumed by an
// embedding operation.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens))
}

// RecordIntentResolved records one cascade outcome labeled by intent and
// producing stage.
func RecordIntentResolved(ctx context.Context, result domain.IntentResult) {
	IntentsResolved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", string(result.Intent)),
		attribute.String("source", string(result.Source)),
	))
}
