package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
)

// MemoryKeyValueRepository keeps values in process memory. It is used in tests
// and when the service runs without an external store.
type MemoryKeyValueRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKeyValueRepository creates an empty in-memory store.
func NewMemoryKeyValueRepository() *MemoryKeyValueRepository {
	return &MemoryKeyValueRepository{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (r *MemoryKeyValueRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.data[key]
	logger.Log.Debugw("memory get", "key", key, "found", ok, "size", len(val))
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

// Set stores a copy of value under key.
func (r *MemoryKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), value...)
	logger.Log.Debugw("memory set", "key", key, "size", len(value))
	return nil
}

// Exists reports whether key has a value.
func (r *MemoryKeyValueRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.data[key]
	return ok, nil
}
