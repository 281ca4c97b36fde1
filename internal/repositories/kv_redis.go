package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
)

// RedisKeyValueRepository stores collection documents as plain Redis strings.
// Keys never expire.
type RedisKeyValueRepository struct {
	client *redis.Client
}

// NewRedisKeyValueRepository creates a repository on top of an existing client.
func NewRedisKeyValueRepository(client *redis.Client) *RedisKeyValueRepository {
	return &RedisKeyValueRepository{client: client}
}

// Get fetches the value stored under key.
func (r *RedisKeyValueRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Debugw("redis get",
		"key", key,
		"size", len(val),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set overwrites the value stored under key.
func (r *RedisKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, 0).Err()

	logger.Log.Debugw("redis set",
		"key", key,
		"size", len(value),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Exists reports whether key is present.
func (r *RedisKeyValueRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return n > 0, nil
}
