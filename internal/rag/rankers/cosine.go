// Package rankers scores passages against a query vector and selects the
// most relevant ones.
package rankers

import (
	"math"
	"sort"

	"github.com/aysenurmengi/ai-languageExercises/internal/rag/schema"
)

// CosineSimilarity computes the normalized dot product of two vectors:
// dot(a, b) / (||a|| * ||b||). Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopK scores every passage against the query vector and returns the K
// highest-scoring passages in descending score order. The sort is stable,
// so ties keep the original passage order and the selection is deterministic.
func TopK(query []float32, passages []schema.Passage, vectors [][]float32, k int) []schema.ScoredPassage {
	scored := make([]schema.ScoredPassage, 0, len(passages))
	for i, p := range passages {
		if i >= len(vectors) {
			break
		}
		scored = append(scored, schema.ScoredPassage{
			Passage: p,
			Score:   CosineSimilarity(query, vectors[i]),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
