package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/store"
	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
)

func newRetrievalPipeline(t *testing.T, embedder *fakeEmbedder, splitter *splitters.CharSplitter, topK int) (*RetrievalPipeline, store.EmbeddingStore) {
	t.Helper()
	cache, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewRetrievalPipeline(embedder, cache, splitter, topK, testLogger()), cache
}

func TestRetrievalUnknownFingerprint(t *testing.T) {
	p, _ := newRetrievalPipeline(t, &fakeEmbedder{}, splitters.NewCharSplitter(1000, 200), 20)

	_, err := p.Run(context.Background(), "deadbeef", "What color is the cat?")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestRetrievalRanksRelevantPassagesFirst(t *testing.T) {
	// Small chunks so each sentence becomes its own passage.
	splitter := splitters.NewCharSplitter(30, 5)
	embedder := &fakeEmbedder{}
	p, cache := newRetrievalPipeline(t, embedder, splitter, 1)

	text := "dogs bark loudly in parks... the cat sleeps on warm mats.."
	require.NoError(t, cache.Put(context.Background(), "abc123", &models.CacheEntry{
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}))

	contextBlock, err := p.Run(context.Background(), "abc123", "where does the cat sleep")
	require.NoError(t, err)
	assert.Contains(t, contextBlock, "cat")
}

func TestRetrievalReusesStoredVectors(t *testing.T) {
	splitter := splitters.NewCharSplitter(1000, 200)
	embedder := &fakeEmbedder{}
	p, cache := newRetrievalPipeline(t, embedder, splitter, 20)

	text := "The cat sat on the mat."
	passages := splitter.Split(text)
	vectors := make([][]float32, len(passages))
	for i, passage := range passages {
		vectors[i] = embedText(passage.Text)
	}
	require.NoError(t, cache.Put(context.Background(), "abc123", &models.CacheEntry{
		Text:      text,
		Vectors:   vectors,
		CreatedAt: time.Now().UTC(),
	}))

	_, err := p.Run(context.Background(), "abc123", "where is the cat")
	require.NoError(t, err)

	// Passage vectors came from the cache; only the question was embedded.
	assert.Equal(t, int32(0), embedder.embedBatchCalls.Load())
	assert.Equal(t, int32(1), embedder.embedCalls.Load())
}

func TestRetrievalReembedsOnVectorMismatch(t *testing.T) {
	splitter := splitters.NewCharSplitter(1000, 200)
	embedder := &fakeEmbedder{}
	p, cache := newRetrievalPipeline(t, embedder, splitter, 20)

	// Entry without vectors (e.g. written under different splitter settings).
	require.NoError(t, cache.Put(context.Background(), "abc123", &models.CacheEntry{
		Text:      "The cat sat on the mat.",
		CreatedAt: time.Now().UTC(),
	}))

	_, err := p.Run(context.Background(), "abc123", "where is the cat")
	require.NoError(t, err)
	assert.Equal(t, int32(1), embedder.embedBatchCalls.Load())
}

func TestRetrievalJoinsPassagesWithBlankLines(t *testing.T) {
	splitter := splitters.NewCharSplitter(10, 2)
	p, cache := newRetrievalPipeline(t, &fakeEmbedder{}, splitter, 3)

	require.NoError(t, cache.Put(context.Background(), "abc123", &models.CacheEntry{
		Text:      strings.Repeat("abcdefgh", 4),
		CreatedAt: time.Now().UTC(),
	}))

	contextBlock, err := p.Run(context.Background(), "abc123", "anything")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(contextBlock, "\n\n"))
}
