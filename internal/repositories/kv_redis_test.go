package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisKeyValueRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRedisKeyValueRepository(rdb)

	t.Run("Get missing key", func(t *testing.T) {
		val, ok, err := repo.Get(ctx, "nothing-here")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, val)

		exists, err := repo.Exists(ctx, "nothing-here")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k", []byte(`{"a":1}`)))

		val, ok, err := repo.Get(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"a":1}`, string(val))

		ttl, err := rdb.TTL(ctx, "k").Result()
		assert.NoError(t, err)
		assert.Equal(t, int64(-1), int64(ttl))
	})

	t.Run("Variant collection round trip", func(t *testing.T) {
		variants := NewRecipeVariantRepository(repo, "it_")
		require.NoError(t, variants.Add(ctx, models.RecipeVariant{ID: "1", RecipeID: "1", VoterIDs: []string{"2"}, Votes: 1}))

		got, err := variants.GetByID(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"2"}, got.VoterIDs)
	})
}
