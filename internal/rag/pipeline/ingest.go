// Package pipeline composes loaders, splitters, embedders and the LLM into
// the document flows of the exercise service.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/store"
	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/loaders"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/normalize"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// IngestResult is the outcome of ingesting one uploaded document.
type IngestResult struct {
	Text        string
	Fingerprint string
	FromCache   bool
}

// IngestPipeline extracts text from an uploaded file, fingerprints it and
// either returns the cached entry or embeds the content and persists a new one.
type IngestPipeline struct {
	embedder interfaces.EmbeddingModel
	cache    store.EmbeddingStore
	splitter *splitters.CharSplitter
	log      *logger.Logger
}

// NewIngestPipeline creates a new IngestPipeline.
func NewIngestPipeline(
	embedder interfaces.EmbeddingModel,
	cache store.EmbeddingStore,
	splitter *splitters.CharSplitter,
	log *logger.Logger,
) *IngestPipeline {
	return &IngestPipeline{
		embedder: embedder,
		cache:    cache,
		splitter: splitter,
		log:      log,
	}
}

// Run ingests the file at path. allowedExts restricts which formats are
// accepted for this call site. The caller owns the temporary file and is
// responsible for removing it.
func (p *IngestPipeline) Run(ctx context.Context, path string, allowedExts []string) (*IngestResult, error) {
	text, err := p.ExtractText(ctx, path, allowedExts)
	if err != nil {
		return nil, err
	}

	fingerprint := normalize.Fingerprint(text)
	p.log.WithField("fingerprint", fingerprint).Debug("Computed content fingerprint")

	// Cache hit: return the stored text as-is, never recompute or overwrite.
	if entry, err := p.cache.Get(ctx, fingerprint); err == nil {
		p.log.WithField("fingerprint", fingerprint).Info("Found existing embeddings, serving from cache")
		return &IngestResult{Text: entry.Text, Fingerprint: fingerprint, FromCache: true}, nil
	}

	p.log.WithField("fingerprint", fingerprint).Info("No existing embeddings found, creating new ones")

	passages := p.splitter.Split(text)
	texts := make([]string, len(passages))
	for i, passage := range passages {
		texts[i] = passage.Text
	}

	vectors, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}

	entry := &models.CacheEntry{
		Text:      text,
		Vectors:   vectors,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.cache.Put(ctx, fingerprint, entry); err != nil {
		return nil, err
	}

	p.log.WithField("fingerprint", fingerprint).Info("Successfully saved new embeddings")
	return &IngestResult{Text: text, Fingerprint: fingerprint, FromCache: false}, nil
}

// ExtractText runs the format-specific loader for the file and returns the
// normalized plain text without touching the cache.
func (p *IngestPipeline) ExtractText(ctx context.Context, path string, allowedExts []string) (string, error) {
	loader, err := loaders.ForFile(path, allowedExts)
	if err != nil {
		return "", err
	}

	docs, err := loader.Load(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.Text)
		sb.WriteString("\n")
	}

	text := normalize.Text(sb.String())
	if text == "" {
		return "", models.ErrEmptyContent
	}
	return text, nil
}
