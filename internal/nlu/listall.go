package nlu

import (
	"strings"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

const listAllPartialRatioThreshold = 80

// ListAllDetector recognizes requests for the full equipment roster. It runs
// before intent routing in the orchestrator and overrides whatever the
// cascade detected.
type ListAllDetector struct {
	scorer domain.StringScorer
}

// NewListAllDetector creates a new ListAllDetector using the given scorer.
func NewListAllDetector(scorer domain.StringScorer) ListAllDetector {
	return ListAllDetector{scorer: scorer}
}

// IsListAllRequest reports whether the utterance asks to list all equipment.
// The check runs on the raw lowercased text; partial-ratio windows absorb
// punctuation on their own.
func (d ListAllDetector) IsListAllRequest(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	for _, phrase := range listAllVocabulary {
		if d.scorer.PartialRatio(t, phrase) >= listAllPartialRatioThreshold {
			return true
		}
	}
	return false
}
