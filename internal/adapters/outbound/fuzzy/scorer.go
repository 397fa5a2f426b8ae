// Package fuzzy adapts the fuzzywuzzy similarity scorers to the
// domain.StringScorer interface.
package fuzzy

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

// Scorer implements domain.StringScorer. All comparisons are lowercased
// first so scores stay case-insensitive.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() Scorer {
	return Scorer{}
}

// Ratio is the normalized edit-distance similarity, 0-100.
func (Scorer) Ratio(a, b string) int {
	return fuzzywuzzy.Ratio(strings.ToLower(a), strings.ToLower(b))
}

// PartialRatio is the best Ratio of the shorter string against any
// equally long substring of the longer one.
func (Scorer) PartialRatio(a, b string) int {
	return fuzzywuzzy.PartialRatio(strings.ToLower(a), strings.ToLower(b))
}

// TokenSetRatio compares both strings as token sets, ignoring order and
// duplication.
func (Scorer) TokenSetRatio(a, b string) int {
	return fuzzywuzzy.TokenSetRatio(strings.ToLower(a), strings.ToLower(b))
}

// InitScorer registers the Scorer in the dependency container.
type InitScorer struct{}

// Initialize registers the StringScorer implementation.
func (is InitScorer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.StringScorer](NewScorer())
	return ctx, nil
}
