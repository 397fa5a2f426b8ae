package nlu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/fuzzy"
	"github.com/sukseskontraktor/rental-assistant/internal/nlu"
)

func TestListAllDetector_IsListAllRequest(t *testing.T) {
	detector := nlu.NewListAllDetector(fuzzy.NewScorer())

	for _, text := range []string{
		"alat apa saja yang tersedia?",
		"ada apa aja di sana",
		"minta daftar lengkap dong",
		"equipment list please",
		"semua unit yang ada",
		"List, dong!",
	} {
		assert.True(t, detector.IsListAllRequest(text), "expected list-all for %q", text)
	}

	for _, text := range []string{
		"",
		"berapa harga excavator",
		"mau booking crane besok",
	} {
		assert.False(t, detector.IsListAllRequest(text), "expected no list-all for %q", text)
	}
}
