package nlu

import (
	"strings"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

const (
	tokenRatioThreshold  = 80
	strictRatioThreshold = 90
	strictLengthDelta    = 2
)

// KeywordMatcher classifies an utterance by priority-ordered keyword rules.
// Each rule is tested token-fuzzy first, then as a literal substring of the
// normalized text; the first matching rule wins.
type KeywordMatcher struct {
	scorer domain.StringScorer
}

// NewKeywordMatcher creates a new KeywordMatcher using the given scorer.
func NewKeywordMatcher(scorer domain.StringScorer) KeywordMatcher {
	return KeywordMatcher{scorer: scorer}
}

// Match returns the first intent whose rule matches the utterance, or false
// when no keyword rule applies.
func (m KeywordMatcher) Match(text string) (domain.Intent, bool) {
	t := Normalize(text)
	if t == "" {
		return "", false
	}
	words := strings.Fields(t)

	for _, rule := range keywordRules {
		if m.ruleMatches(rule, t, words) {
			return rule.Intent, true
		}
	}
	return "", false
}

func (m KeywordMatcher) ruleMatches(rule keywordRule, normalized string, words []string) bool {
	for _, w := range words {
		for _, kw := range rule.Keywords {
			if m.tokenMatches(rule, w, kw) {
				return true
			}
		}
	}
	for _, kw := range rule.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

func (m KeywordMatcher) tokenMatches(rule keywordRule, token, keyword string) bool {
	score := m.scorer.Ratio(token, keyword)
	if rule.Strict {
		return score >= strictRatioThreshold && absInt(runeLen(token)-runeLen(keyword)) <= strictLengthDelta
	}
	return score >= tokenRatioThreshold
}

func runeLen(s string) int {
	return len([]rune(s))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
