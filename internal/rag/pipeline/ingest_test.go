package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysenurmengi/ai-languageExercises/internal/exercise_service/store"
	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
)

func writeTempTxt(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newIngestPipeline(t *testing.T, embedder *fakeEmbedder) (*IngestPipeline, store.EmbeddingStore) {
	t.Helper()
	cache, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	splitter := splitters.NewCharSplitter(1000, 200)
	return NewIngestPipeline(embedder, cache, splitter, testLogger()), cache
}

func TestIngestFirstUpload(t *testing.T) {
	embedder := &fakeEmbedder{}
	p, cache := newIngestPipeline(t, embedder)
	path := writeTempTxt(t, "The cat sat on the mat.")

	result, err := p.Run(context.Background(), path, []string{".txt"})
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, "The cat sat on the mat.", result.Text)
	assert.Len(t, result.Fingerprint, 32)
	assert.Equal(t, int32(1), embedder.embedBatchCalls.Load())

	entry, err := cache.Get(context.Background(), result.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, result.Text, entry.Text)
	assert.NotEmpty(t, entry.Vectors)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestIngestRepeatUploadServedFromCache(t *testing.T) {
	embedder := &fakeEmbedder{}
	p, _ := newIngestPipeline(t, embedder)
	path := writeTempTxt(t, "The cat sat on the mat.")

	first, err := p.Run(context.Background(), path, []string{".txt"})
	require.NoError(t, err)

	second, err := p.Run(context.Background(), path, []string{".txt"})
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Text, second.Text)
	// The repeat upload must not trigger a second embedding call.
	assert.Equal(t, int32(1), embedder.embedBatchCalls.Load())
}

func TestIngestSameContentDifferentFile(t *testing.T) {
	embedder := &fakeEmbedder{}
	p, _ := newIngestPipeline(t, embedder)

	// Two distinct uploads with identical content share one fingerprint.
	a := writeTempTxt(t, "The cat sat on the mat.")
	b := filepath.Join(t.TempDir(), "other-name.txt")
	require.NoError(t, os.WriteFile(b, []byte("The cat sat on the mat."), 0o644))

	first, err := p.Run(context.Background(), a, []string{".txt"})
	require.NoError(t, err)
	second, err := p.Run(context.Background(), b, []string{".txt"})
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.True(t, second.FromCache)
}

func TestIngestUnsupportedExtension(t *testing.T) {
	p, _ := newIngestPipeline(t, &fakeEmbedder{})
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644))

	_, err := p.Run(context.Background(), path, []string{".txt", ".pdf"})
	assert.True(t, errors.Is(err, models.ErrUnsupportedFormat))
}

func TestIngestEmptyContent(t *testing.T) {
	p, _ := newIngestPipeline(t, &fakeEmbedder{})
	path := writeTempTxt(t, "   \n\t  ")

	_, err := p.Run(context.Background(), path, []string{".txt"})
	assert.True(t, errors.Is(err, models.ErrEmptyContent))
}

func TestIngestEmbedderFailureLeavesNoEntry(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("embedding backend down")}
	p, cache := newIngestPipeline(t, embedder)
	path := writeTempTxt(t, "The cat sat on the mat.")

	_, err := p.Run(context.Background(), path, []string{".txt"})
	require.Error(t, err)

	// A failed ingest must not leave a partial cache entry behind.
	ok, err := cache.Exists(context.Background(), "any")
	require.NoError(t, err)
	assert.False(t, ok)
}
