// Package store persists embedding cache entries keyed by content fingerprint.
package store

import (
	"context"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

// EmbeddingStore is the interface for the fingerprint-keyed cache of
// ingested documents. Entries are write-once: Put never replaces an
// existing entry, and Get returns models.ErrNotFound for unknown keys.
type EmbeddingStore interface {
	Get(ctx context.Context, fingerprint string) (*models.CacheEntry, error)
	Put(ctx context.Context, fingerprint string, entry *models.CacheEntry) error
	Exists(ctx context.Context, fingerprint string) (bool, error)
}
