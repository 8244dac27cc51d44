package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/store"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/rankers"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// RetrievalPipeline turns a cached document and a question into a context
// block of the most relevant passages.
type RetrievalPipeline struct {
	embedder interfaces.EmbeddingModel
	cache    store.EmbeddingStore
	splitter *splitters.CharSplitter
	topK     int
	log      *logger.Logger
}

// NewRetrievalPipeline creates a new RetrievalPipeline.
func NewRetrievalPipeline(
	embedder interfaces.EmbeddingModel,
	cache store.EmbeddingStore,
	splitter *splitters.CharSplitter,
	topK int,
	log *logger.Logger,
) *RetrievalPipeline {
	return &RetrievalPipeline{
		embedder: embedder,
		cache:    cache,
		splitter: splitter,
		topK:     topK,
		log:      log,
	}
}

// Run loads the cached text for the fingerprint, splits it into overlapping
// passages, ranks them by cosine similarity against the question and returns
// the top passages joined by blank lines, best first.
func (p *RetrievalPipeline) Run(ctx context.Context, fingerprint, question string) (string, error) {
	entry, err := p.cache.Get(ctx, fingerprint)
	if err != nil {
		return "", err
	}

	passages := p.splitter.Split(entry.Text)
	if len(passages) == 0 {
		return "", nil
	}
	p.log.WithField("passages", len(passages)).Debug("Split cached text into passages")

	// Vectors stored at ingest time used the same splitter parameters, so
	// when the counts line up they can be reused instead of re-embedding.
	vectors := entry.Vectors
	if len(vectors) != len(passages) {
		texts := make([]string, len(passages))
		for i, passage := range passages {
			texts[i] = passage.Text
		}
		vectors, err = p.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return "", fmt.Errorf("failed to embed passages: %w", err)
		}
	}

	queryVector, err := p.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %w", err)
	}

	scored := rankers.TopK(queryVector, passages, vectors, p.topK)
	p.log.WithField("selected", len(scored)).Debug("Ranked passages by similarity")

	parts := make([]string, len(scored))
	for i, sp := range scored {
		parts[i] = sp.Passage.Text
	}
	return strings.Join(parts, "\n\n"), nil
}
