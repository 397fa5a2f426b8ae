package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Ratio(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 100, s.Ratio("excavator", "excavator"))
	assert.Equal(t, 100, s.Ratio("Excavator", "EXCAVATOR"))
	assert.GreaterOrEqual(t, s.Ratio("eksavator", "excavator"), 60)
	assert.Less(t, s.Ratio("crane", "bulldozer"), 40)
}

func TestScorer_Ratio_Symmetric(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, s.Ratio("harga", "harganya"), s.Ratio("harganya", "harga"))
}

func TestScorer_PartialRatio(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 100, s.PartialRatio("alat apa saja yang ada", "apa saja"))
	assert.Less(t, s.PartialRatio("halo kak", "daftar lengkap"), 60)
}

func TestScorer_TokenSetRatio(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 100, s.TokenSetRatio("crawler crane", "crane crawler"))
	assert.Equal(t, 100, s.TokenSetRatio("excavator pc200", "pc200 excavator excavator"))
}
