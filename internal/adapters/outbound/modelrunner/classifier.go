package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

// Classifier adapts APIClient to the domain.IntentClassifier interface.
type Classifier struct {
	client APIClient
	model  string
}

// NewClassifier creates a new Classifier.
func NewClassifier(client APIClient, model string) Classifier {
	return Classifier{
		client: client,
		model:  model,
	}
}

// Classify scores an utterance embedding against the pre-trained model and
// returns the argmax class.
func (c Classifier) Classify(ctx context.Context, embedding []float64) (domain.ClassPrediction, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := c.client.Classify(spanCtx, ClassifyRequest{
		Model:     c.model,
		Embedding: embedding,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ClassPrediction{}, err
	}

	if len(resp.Predictions) == 0 {
		err := errors.New("no predictions in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ClassPrediction{}, err
	}

	best := resp.Predictions[0]
	for _, p := range resp.Predictions[1:] {
		if p.Probability > best.Probability {
			best = p
		}
	}

	return domain.ClassPrediction{
		Intent:      domain.Intent(best.Label),
		Probability: best.Probability,
	}, nil
}

// InitClassifier initializes the IntentClassifier dependency.
type InitClassifier struct {
	HttpClient      *http.Client `resolve:""`
	ModelRunnerURL  string       `config:"MODEL_RUNNER_URL"`
	ClassifierModel string       `config:"INTENT_CLASSIFIER_MODEL" default:"ai/intent-random-forest"`
}

// Initialize registers the IntentClassifier in the dependency container.
func (i InitClassifier) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.IntentClassifier](NewClassifier(
		NewAPIClient(i.ModelRunnerURL, "", i.HttpClient),
		i.ClassifierModel,
	))
	return ctx, nil
}
