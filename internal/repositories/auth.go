package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// AuthRepository stores the last authentication state as a single object.
type AuthRepository struct {
	store KeyValueStore
	key   string
}

func NewAuthRepository(store KeyValueStore, prefix string) *AuthRepository {
	return &AuthRepository{store: store, key: prefix + AuthCollection}
}

// Get returns the stored state, or the logged out default when nothing is stored.
func (r *AuthRepository) Get(ctx context.Context) (models.AuthState, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return models.LoggedOut(), err
	}
	if !ok {
		return models.LoggedOut(), nil
	}

	var state models.AuthState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.LoggedOut(), fmt.Errorf("decode %s: %w", r.key, err)
	}
	return state, nil
}

// Set persists state.
func (r *AuthRepository) Set(ctx context.Context, state models.AuthState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.store.Set(ctx, r.key, raw)
}
