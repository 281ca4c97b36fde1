package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	_, ok, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`["a"]`)
	require.NoError(t, repo.Set(ctx, "k", value))

	// stored value is a copy
	value[0] = 'x'
	got, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, string(got))

	got[0] = 'y'
	again, _, _ := repo.Get(ctx, "k")
	assert.Equal(t, `["a"]`, string(again))

	exists, err := repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
}
