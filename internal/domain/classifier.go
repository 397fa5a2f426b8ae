package domain

import "context"

// ClassPrediction is the argmax class of the statistical fallback model and
// its probability.
type ClassPrediction struct {
	Intent      Intent
	Probability float64
}

// IntentClassifier scores an utterance embedding against a pre-trained
// multi-class model. The model is an offline-trained artifact consumed as a
// black box; this stage is optional and sits behind a feature flag.
type IntentClassifier interface {
	Classify(ctx context.Context, embedding []float64) (ClassPrediction, error)
}
