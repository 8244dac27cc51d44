package rankers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysenurmengi/ai-languageExercises/internal/rag/schema"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosineSimilarityDegenerate(t *testing.T) {
	assert.Zero(t, CosineSimilarity([]float32{1, 0}, []float32{1}), "mismatched lengths")
	assert.Zero(t, CosineSimilarity(nil, nil), "empty vectors")
	assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 0}), "zero vector")
}

func TestTopKRanksByScore(t *testing.T) {
	query := []float32{1, 0}
	passages := []schema.Passage{
		{Index: 0, Text: "orthogonal"},
		{Index: 1, Text: "aligned"},
		{Index: 2, Text: "partly aligned"},
	}
	vectors := [][]float32{
		{0, 1},   // score 0
		{1, 0},   // score 1
		{1, 1},   // score ~0.707
	}

	scored := TopK(query, passages, vectors, 2)
	require.Len(t, scored, 2)
	assert.Equal(t, "aligned", scored[0].Passage.Text)
	assert.Equal(t, "partly aligned", scored[1].Passage.Text)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestTopKStableOnTies(t *testing.T) {
	query := []float32{1, 0}
	passages := []schema.Passage{
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
		{Index: 2, Text: "third"},
	}
	// All identical scores: original passage order must be preserved.
	vectors := [][]float32{{1, 0}, {1, 0}, {1, 0}}

	scored := TopK(query, passages, vectors, 3)
	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].Passage.Text)
	assert.Equal(t, "second", scored[1].Passage.Text)
	assert.Equal(t, "third", scored[2].Passage.Text)
}

func TestTopKFewerPassagesThanK(t *testing.T) {
	query := []float32{1, 0}
	passages := []schema.Passage{{Index: 0, Text: "only one"}}
	vectors := [][]float32{{1, 0}}

	scored := TopK(query, passages, vectors, 20)
	require.Len(t, scored, 1)
}
