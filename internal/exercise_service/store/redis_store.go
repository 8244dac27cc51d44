package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/aysenurmengi/ai-languageExercises/internal/config"
	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

const keyPrefix = "embeddings:"

// RedisStore 是基于 Redis 的 EmbeddingStore 实现。
// 条目通过 SetNX 写入，保证同一指纹只会被写入一次。
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 连接 Redis 并返回一个 RedisStore。
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用 Ping 检查连接是否成功。
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: rdb}, nil
}

// Get 加载指定指纹的缓存条目。
func (s *RedisStore) Get(ctx context.Context, fingerprint string) (*models.CacheEntry, error) {
	data, err := s.client.Get(ctx, keyPrefix+fingerprint).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

// Put 写入新的缓存条目，已存在的条目保持不变。
func (s *RedisStore) Put(ctx context.Context, fingerprint string, entry *models.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", fingerprint, err)
	}

	// 缓存条目永不过期，由运维手动清理。
	if err := s.client.SetNX(ctx, keyPrefix+fingerprint, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", fingerprint, err)
	}
	return nil
}

// Exists 检查指定指纹的缓存条目是否存在。
func (s *RedisStore) Exists(ctx context.Context, fingerprint string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+fingerprint).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close 关闭 Redis 连接。
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// 编译时检查，确保 RedisStore 实现了 EmbeddingStore 接口
var _ EmbeddingStore = (*RedisStore)(nil)
