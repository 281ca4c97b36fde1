package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// KeyValueStore is the persistent key-value backend of the storage gateway.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}

// lockingStore is implemented by backends that lock a key until the request
// transaction ends. mu alone is released before the transaction commits.
type lockingStore interface {
	GetForUpdate(ctx context.Context, key string) ([]byte, bool, error)
}

// DefaultKeyPrefix namespaces the collection keys.
const DefaultKeyPrefix = "moroccan-cuisine-app_"

// Collection names
const (
	UsersCollection    = "users"
	RecipesCollection  = "recipes"
	VariantsCollection = "recipe-variants"
	RegionsCollection  = "regions"
	AuthCollection     = "auth"
)

// collection is a JSON array stored under a single key. Every mutation reads
// the whole array, changes it in memory and writes the whole array back.
// mu serialises read-modify-write cycles within the process only.
type collection[T any] struct {
	store KeyValueStore
	key   string
	id    func(T) string
	mu    sync.Mutex
}

func newCollection[T any](store KeyValueStore, prefix, name string, id func(T) string) *collection[T] {
	return &collection[T]{
		store: store,
		key:   prefix + name,
		id:    id,
	}
}

// Key returns the storage key of the collection.
func (c *collection[T]) Key() string {
	return c.key
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	return c.decode(c.store.Get(ctx, c.key))
}

// loadForUpdate reads the items a mutation starts from.
func (c *collection[T]) loadForUpdate(ctx context.Context) ([]T, error) {
	if ls, ok := c.store.(lockingStore); ok {
		return c.decode(ls.GetForUpdate(ctx, c.key))
	}
	return c.load(ctx)
}

func (c *collection[T]) decode(raw []byte, ok bool, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, raw)
}

// mutate runs fn on the current items under the collection lock and stores the result.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, items)
}

// GetAll returns every item. A missing key yields an empty list.
func (c *collection[T]) GetAll(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// SetAll replaces the whole collection.
func (c *collection[T]) SetAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// Add appends item.
func (c *collection[T]) Add(ctx context.Context, item T) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// GetByID returns the item with the given id or nil.
func (c *collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Update replaces the item sharing item's id. It reports whether one was found.
func (c *collection[T]) Update(ctx context.Context, item T) (bool, error) {
	found := false
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.id(items[i]) == c.id(item) {
				items[i] = item
				found = true
			}
		}
		return items, nil
	})
	return found, err
}

// Modify applies fn to the item with the given id inside one locked
// read-modify-write cycle. It returns the stored result, or nil when absent.
// An error from fn aborts the write.
func (c *collection[T]) Modify(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	var result *T
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.id(items[i]) != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated := items[i]
			result = &updated
			return items, nil
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the item with the given id and reports whether it existed.
func (c *collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	n, err := c.DeleteWhere(ctx, func(item T) bool { return c.id(item) == id })
	return n > 0, err
}

// DeleteWhere removes every item matching pred and returns how many were removed.
func (c *collection[T]) DeleteWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	})
	return removed, err
}

// Exists reports whether the collection key has been written.
func (c *collection[T]) Exists(ctx context.Context) (bool, error) {
	return c.store.Exists(ctx, c.key)
}
