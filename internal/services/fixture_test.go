package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    *repositories.MemoryKeyValueRepository
	users    *repositories.UserRepository
	recipes  *repositories.RecipeRepository
	variants *repositories.RecipeVariantRepository
	regions  *repositories.RegionRepository
	auth     *repositories.AuthRepository
	clock    *testClock
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

// Now returns the current time and advances the clock by one millisecond,
// so consecutive ids never collide.
func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Millisecond)
	return t
}

func newEmptyFixture(t *testing.T) *fixture {
	t.Helper()
	store := repositories.NewMemoryKeyValueRepository()
	prefix := repositories.DefaultKeyPrefix
	return &fixture{
		store:    store,
		users:    repositories.NewUserRepository(store, prefix),
		recipes:  repositories.NewRecipeRepository(store, prefix),
		variants: repositories.NewRecipeVariantRepository(store, prefix),
		regions:  repositories.NewRegionRepository(store, prefix),
		auth:     repositories.NewAuthRepository(store, prefix),
		clock:    &testClock{now: time.UnixMilli(1700000000000)},
	}
}

// newFixture returns a store populated by the seeder.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := newEmptyFixture(t)
	seeded, err := services.NewSeeder(f.seedStores(), f.opts()...).Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
	return f
}

func (f *fixture) opts() []services.Option {
	return []services.Option{
		services.WithClock(f.clock.Now),
		services.WithBcryptCost(bcrypt.MinCost),
	}
}

func (f *fixture) seedStores() services.SeedStores {
	return services.SeedStores{
		Users:    f.users,
		Recipes:  f.recipes,
		Variants: f.variants,
		Regions:  f.regions,
	}
}

var (
	adminSession = models.LoggedIn(models.User{ID: "1", Username: "admin", Role: models.RoleAdmin})
	userSession  = models.LoggedIn(models.User{ID: "2", Username: "user", Role: models.RoleUser})
	anonymous    = models.LoggedOut()
)

// slowStore delays every read so that concurrent read-modify-write cycles overlap.
type slowStore struct {
	repositories.KeyValueStore
	delay time.Duration
}

func (s slowStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	time.Sleep(s.delay)
	return s.KeyValueStore.Get(ctx, key)
}

// runConcurrently starts fn n times at once and returns the errors by index.
func runConcurrently(n int, fn func(i int) error) []error {
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func recipeIDs(recipes []models.Recipe) []string {
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}
