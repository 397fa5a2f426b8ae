package nlu

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/common"
	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

const (
	// SemanticScoreThreshold is the minimum cosine similarity for a
	// semantic hit to count as confident.
	SemanticScoreThreshold = 0.55
	// ClassifierProbabilityThreshold is the minimum class probability for
	// the statistical fallback to count as confident.
	ClassifierProbabilityThreshold = 0.6

	semanticTopK = 3
)

// IntentResolver turns one utterance into an intent, short-circuiting
// through keyword, semantic, and statistical stages.
type IntentResolver interface {
	Resolve(ctx context.Context, text string) (domain.IntentResult, error)
}

// SemanticSource finds nearest knowledge examples for an utterance and
// returns the query embedding for downstream stages. Satisfied by
// SemanticMatcher.
type SemanticSource interface {
	Match(ctx context.Context, text string, topK int) ([]SemanticHit, []float64, error)
}

// CascadeResolverImpl is the implementation of IntentResolver.
type CascadeResolverImpl struct {
	keywords          KeywordMatcher
	semantic          SemanticSource
	classifier        domain.IntentClassifier
	classifierEnabled bool
}

// NewCascadeResolverImpl creates a new instance of CascadeResolverImpl.
func NewCascadeResolverImpl(
	keywords KeywordMatcher,
	semantic SemanticSource,
	classifier domain.IntentClassifier,
	classifierEnabled bool,
) CascadeResolverImpl {
	return CascadeResolverImpl{
		keywords:          keywords,
		semantic:          semantic,
		classifier:        classifier,
		classifierEnabled: classifierEnabled,
	}
}

// Resolve runs the cascade. Keyword rules are hand-curated ground truth and
// always win; semantic hits below the threshold either escalate to the
// statistical classifier (when enabled) or come back as a low-confidence
// best guess.
func (cr CascadeResolverImpl) Resolve(ctx context.Context, text string) (domain.IntentResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if intent, ok := cr.keywords.Match(text); ok {
		result := domain.IntentResult{Intent: intent, Source: domain.IntentSource_Keyword}
		RecordIntentResolved(spanCtx, result)
		return result, nil
	}

	hits, queryVector, err := cr.semantic.Match(spanCtx, text, semanticTopK)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IntentResult{}, fmt.Errorf("semantic match: %w", err)
	}

	var result domain.IntentResult
	switch {
	case len(hits) > 0 && hits[0].Score >= SemanticScoreThreshold:
		result = domain.IntentResult{
			Intent:  hits[0].Intent,
			Source:  domain.IntentSource_Semantic,
			Score:   common.Ptr(hits[0].Score),
			Example: common.Ptr(hits[0].Example),
		}
	case len(hits) > 0 && !cr.classifierEnabled:
		result = domain.IntentResult{
			Intent:  hits[0].Intent,
			Source:  domain.IntentSource_SemanticLow,
			Score:   common.Ptr(hits[0].Score),
			Example: common.Ptr(hits[0].Example),
		}
	case cr.classifierEnabled && cr.classifier != nil:
		result, err = cr.classify(spanCtx, queryVector)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.IntentResult{}, err
		}
	default:
		result = domain.IntentResult{Intent: domain.Intent_Unknown, Source: domain.IntentSource_None}
	}

	RecordIntentResolved(spanCtx, result)
	return result, nil
}

func (cr CascadeResolverImpl) classify(ctx context.Context, embedding []float64) (domain.IntentResult, error) {
	prediction, err := cr.classifier.Classify(ctx, embedding)
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("classify intent: %w", err)
	}

	if prediction.Probability >= ClassifierProbabilityThreshold {
		return domain.IntentResult{
			Intent: prediction.Intent,
			Source: domain.IntentSource_RandomForest,
			Score:  common.Ptr(prediction.Probability),
		}, nil
	}
	return domain.IntentResult{
		Intent: domain.Intent_Unknown,
		Source: domain.IntentSource_RandomForestLow,
		Score:  common.Ptr(prediction.Probability),
	}, nil
}

// InitIntentResolver loads the knowledge corpus, embeds it, builds the
// in-memory index, and registers the IntentResolver in the dependency
// container. The index is built once here and immutable afterwards.
type InitIntentResolver struct {
	Scorer            domain.StringScorer     `resolve:""`
	Encoder           domain.SemanticEncoder  `resolve:""`
	Knowledge         domain.KnowledgeSource  `resolve:""`
	Classifier        domain.IntentClassifier `resolve:""`
	ClassifierEnabled bool                    `config:"INTENT_CLASSIFIER_ENABLED" default:"false"`
}

// Initialize builds the semantic index and registers the cascade resolver.
func (iir InitIntentResolver) Initialize(ctx context.Context) (context.Context, error) {
	examples, err := iir.Knowledge.Load(ctx)
	if err != nil {
		return ctx, fmt.Errorf("load knowledge corpus: %w", err)
	}
	if len(examples) == 0 {
		examples = domain.FallbackKnowledgeExamples()
	}

	texts := make([]string, len(examples))
	for i, example := range examples {
		texts[i] = example.Text
	}

	embeddings, err := iir.Encoder.EncodeBatch(ctx, texts)
	if err != nil {
		return ctx, fmt.Errorf("embed knowledge corpus: %w", err)
	}

	vectors := make([][]float64, len(embeddings))
	for i, embedding := range embeddings {
		vectors[i] = embedding.Vector
	}

	index, err := BuildEmbeddingIndex(examples, vectors)
	if err != nil {
		return ctx, err
	}

	depend.Register[IntentResolver](NewCascadeResolverImpl(
		NewKeywordMatcher(iir.Scorer),
		NewSemanticMatcher(iir.Encoder, index),
		iir.Classifier,
		iir.ClassifierEnabled,
	))
	return ctx, nil
}
