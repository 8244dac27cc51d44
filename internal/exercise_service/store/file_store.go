package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

// FileStore is an EmbeddingStore backed by one JSON file per fingerprint
// under a fixed directory. Writes use create-if-absent semantics, so two
// requests racing to ingest the same content cannot clobber each other:
// the loser's write is simply skipped.
type FileStore struct {
	dir string
}

// NewFileStore creates the embeddings directory if needed and returns a
// store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create embeddings directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(fingerprint string) string {
	return filepath.Join(s.dir, fingerprint+".json")
}

// Get loads the cache entry for the given fingerprint.
func (s *FileStore) Get(ctx context.Context, fingerprint string) (*models.CacheEntry, error) {
	data, err := os.ReadFile(s.path(fingerprint))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache entry %s: %w", fingerprint, err)
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry %s: %w", fingerprint, err)
	}
	return &entry, nil
}

// Put persists a new cache entry. An already existing entry is left
// untouched; by construction its content is identical for this fingerprint.
func (s *FileStore) Put(ctx context.Context, fingerprint string, entry *models.CacheEntry) error {
	f, err := os.OpenFile(s.path(fingerprint), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create cache entry %s: %w", fingerprint, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", fingerprint, err)
	}
	return nil
}

// Exists reports whether a cache entry is present for the fingerprint.
func (s *FileStore) Exists(ctx context.Context, fingerprint string) (bool, error) {
	_, err := os.Stat(s.path(fingerprint))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// compile-time check to ensure FileStore implements the EmbeddingStore interface
var _ EmbeddingStore = (*FileStore)(nil)
