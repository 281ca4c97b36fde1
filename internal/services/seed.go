package services

import (
	"context"
	"slices"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// SeedStores are the collections written by the seeder.
type SeedStores struct {
	Users    interface{ SetAll(ctx context.Context, users []models.User) error }
	Recipes  interface{ SetAll(ctx context.Context, recipes []models.Recipe) error }
	Variants interface {
		SetAll(ctx context.Context, variants []models.RecipeVariant) error
	}
	Regions interface {
		SetAll(ctx context.Context, regions []models.Region) error
		Exists(ctx context.Context) (bool, error)
	}
}

// Seeder populates an empty store with the initial catalog.
type Seeder struct {
	stores SeedStores
	opts   options
}

// NewSeeder creates a new Seeder.
func NewSeeder(stores SeedStores, opts ...Option) *Seeder {
	return &Seeder{stores: stores, opts: newOptions(opts)}
}

// Seed writes the initial users, recipes, variants and regions unless the
// regions key already exists. It reports whether data was written.
// Regions go last so that an interrupted seed is retried on the next start.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	exists, err := s.stores.Regions.Exists(ctx)
	if err != nil {
		logger.Log.Errorw("failed to check seed marker", "error", err)
		return false, err
	}
	if exists {
		logger.Log.Infow("store already initialised, skipping seed")
		return false, nil
	}

	users := make([]models.User, 0, len(seedAccounts))
	for _, a := range seedAccounts {
		hashed, err := hashPassword(a.Password, s.opts.bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash seed password", "username", a.Username, "error", err)
			return false, err
		}
		users = append(users, models.User{ID: a.ID, Username: a.Username, Password: hashed, Role: a.Role})
	}

	if err := s.stores.Users.SetAll(ctx, users); err != nil {
		logger.Log.Errorw("failed to seed users", "error", err)
		return false, err
	}
	if err := s.stores.Recipes.SetAll(ctx, cloneRecipes(seedRecipes)); err != nil {
		logger.Log.Errorw("failed to seed recipes", "error", err)
		return false, err
	}
	if err := s.stores.Variants.SetAll(ctx, cloneVariants(seedVariants)); err != nil {
		logger.Log.Errorw("failed to seed variants", "error", err)
		return false, err
	}
	if err := s.stores.Regions.SetAll(ctx, slices.Clone(seedRegions)); err != nil {
		logger.Log.Errorw("failed to seed regions", "error", err)
		return false, err
	}

	logger.Log.Infow("store seeded",
		"users", len(users),
		"regions", len(seedRegions),
		"recipes", len(seedRecipes),
		"variants", len(seedVariants),
	)
	return true, nil
}

func cloneRecipes(src []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, len(src))
	for i, r := range src {
		r.Ingredients = slices.Clone(r.Ingredients)
		r.Steps = slices.Clone(r.Steps)
		out[i] = r
	}
	return out
}

func cloneVariants(src []models.RecipeVariant) []models.RecipeVariant {
	out := make([]models.RecipeVariant, len(src))
	for i, v := range src {
		v.Ingredients = slices.Clone(v.Ingredients)
		v.Steps = slices.Clone(v.Steps)
		v.VoterIDs = slices.Clone(v.VoterIDs)
		out[i] = v
	}
	return out
}
