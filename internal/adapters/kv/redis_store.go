package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	redisclient "github.com/Aryan9369/HonestWork/internal/infrastructure/clients/redis"
)

// RedisStore implements KVStore on Redis. This backend lets several
// processes share one profile; paired with the Redis event bus it gives
// every process the same external-change signal a second browser tab
// would produce.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a Redis-backed key-value store
func NewRedisStore(client *redisclient.Client) providers.KVStore {
	return &RedisStore{
		client: client,
	}
}

// Get retrieves the raw value for a key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, providers.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return result, nil
}

// Set stores the raw value for a key, with no expiration
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
