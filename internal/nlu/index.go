package nlu

import (
	"fmt"
	"sort"

	"github.com/sukseskontraktor/rental-assistant/internal/common"
	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

// SemanticHit is one nearest-neighbor result from the EmbeddingIndex.
type SemanticHit struct {
	Intent  domain.Intent
	Example string
	Score   float64
}

type indexEntry struct {
	vector  []float64
	intent  domain.Intent
	example string
}

// EmbeddingIndex is an in-memory inner-product nearest-neighbor index over
// the embedded knowledge corpus. Entries are L2-normalized at build time, so
// the inner product against a normalized query is the cosine similarity.
// Built once at startup and read-only afterwards; safe for concurrent use.
type EmbeddingIndex struct {
	entries []indexEntry
	dim     int
}

// BuildEmbeddingIndex builds an index from knowledge examples and their
// embedding vectors, matched by position.
func BuildEmbeddingIndex(examples []domain.KnowledgeExample, vectors [][]float64) (*EmbeddingIndex, error) {
	if len(examples) != len(vectors) {
		return nil, fmt.Errorf("embedding index: %d examples but %d vectors", len(examples), len(vectors))
	}

	ix := &EmbeddingIndex{}
	for i, example := range examples {
		v := make([]float64, len(vectors[i]))
		copy(v, vectors[i])

		if ix.dim == 0 {
			ix.dim = len(v)
		} else if len(v) != ix.dim {
			return nil, fmt.Errorf("embedding index: vector %d has dimension %d, want %d", i, len(v), ix.dim)
		}

		common.NormalizeL2(v)
		ix.entries = append(ix.entries, indexEntry{
			vector:  v,
			intent:  example.Intent,
			example: example.Text,
		})
	}
	return ix, nil
}

// Len returns the number of indexed examples.
func (ix *EmbeddingIndex) Len() int {
	return len(ix.entries)
}

// Search returns up to topK hits for the query vector, best score first.
// The query is normalized on a copy; entries whose inner product cannot be
// computed are skipped.
func (ix *EmbeddingIndex) Search(query []float64, topK int) []SemanticHit {
	if topK <= 0 || len(ix.entries) == 0 {
		return nil
	}

	q := make([]float64, len(query))
	copy(q, query)
	common.NormalizeL2(q)

	hits := make([]SemanticHit, 0, len(ix.entries))
	for _, entry := range ix.entries {
		score, ok := common.Dot(q, entry.vector)
		if !ok {
			continue
		}
		hits = append(hits, SemanticHit{
			Intent:  entry.intent,
			Example: entry.example,
			Score:   score,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}
