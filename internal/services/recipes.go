package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

var (
	ErrInvalidCategory   = errors.New("unknown recipe category")
	ErrInvalidDifficulty = errors.New("unknown recipe difficulty")
)

// RecipeInput holds the editable fields of a recipe.
type RecipeInput struct {
	Name            string
	NameAr          string
	RegionID        string
	Description     string
	Ingredients     []string
	Steps           []string
	ImageURL        string
	Category        string
	PreparationTime int
	CookingTime     int
	Servings        int
	Difficulty      string
}

// RecipeService manages recipes on behalf of administrators.
type RecipeService struct {
	recipes  RecipeStore
	regions  RegionStore
	variants VariantStore
	events   EventPublisher
	opts     options
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes RecipeStore, regions RegionStore, variants VariantStore, events EventPublisher, opts ...Option) *RecipeService {
	return &RecipeService{
		recipes:  recipes,
		regions:  regions,
		variants: variants,
		events:   events,
		opts:     newOptions(opts),
	}
}

// Create stores a new recipe authored by the session user.
func (s *RecipeService) Create(ctx context.Context, session models.AuthState, in RecipeInput) (models.Recipe, error) {
	if err := requireAdmin(session); err != nil {
		return models.Recipe{}, err
	}
	if err := s.check(ctx, in); err != nil {
		return models.Recipe{}, err
	}

	now := s.opts.now()
	recipe := models.Recipe{
		ID:        newID(now),
		CreatedAt: now.UnixMilli(),
		CreatedBy: session.UserID(),
	}
	in.applyTo(&recipe)

	if err := s.recipes.Add(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to add recipe", "error", err)
		return models.Recipe{}, err
	}

	logger.Log.Infow("recipe created", "recipe_id", recipe.ID, "by", session.UserID())
	publish(ctx, s.events, s.opts, models.EventRecipeCreated, recipe.ID, session.UserID(), recipe)
	return recipe, nil
}

// Update replaces the editable fields of a recipe. Id, creation time and
// author are kept.
func (s *RecipeService) Update(ctx context.Context, session models.AuthState, id string, in RecipeInput) (models.Recipe, error) {
	if err := requireAdmin(session); err != nil {
		return models.Recipe{}, err
	}
	if err := s.check(ctx, in); err != nil {
		return models.Recipe{}, err
	}

	current, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load recipe", "recipe_id", id, "error", err)
		return models.Recipe{}, err
	}
	if current == nil {
		return models.Recipe{}, ErrRecipeNotFound
	}

	updated := *current
	in.applyTo(&updated)

	found, err := s.recipes.Update(ctx, updated)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", id, "error", err)
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, ErrRecipeNotFound
	}

	logger.Log.Infow("recipe updated", "recipe_id", id, "by", session.UserID())
	publish(ctx, s.events, s.opts, models.EventRecipeUpdated, id, session.UserID(), updated)
	return updated, nil
}

// Delete removes a recipe and then every variant attached to it.
func (s *RecipeService) Delete(ctx context.Context, session models.AuthState, id string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	found, err := s.recipes.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", id, "error", err)
		return err
	}
	if !found {
		return ErrRecipeNotFound
	}

	removed, err := s.variants.DeleteByRecipeID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe variants", "recipe_id", id, "error", err)
		return err
	}

	logger.Log.Infow("recipe deleted", "recipe_id", id, "variants_removed", removed, "by", session.UserID())
	publish(ctx, s.events, s.opts, models.EventRecipeDeleted, id, session.UserID(), map[string]int{"variantsRemoved": removed})
	return nil
}

func (s *RecipeService) check(ctx context.Context, in RecipeInput) error {
	switch in.Category {
	case models.CategoryMain, models.CategoryDessert, models.CategoryDrink, models.CategoryStarter:
	default:
		return ErrInvalidCategory
	}
	switch in.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}

	region, err := s.regions.GetByID(ctx, in.RegionID)
	if err != nil {
		logger.Log.Errorw("failed to load region", "region_id", in.RegionID, "error", err)
		return err
	}
	if region == nil {
		return ErrRegionNotFound
	}
	return nil
}

func (in RecipeInput) applyTo(r *models.Recipe) {
	r.Name = in.Name
	r.NameAr = in.NameAr
	r.RegionID = in.RegionID
	r.Description = in.Description
	r.Ingredients = cleanLines(in.Ingredients)
	r.Steps = cleanLines(in.Steps)
	r.ImageURL = in.ImageURL
	if r.ImageURL == "" {
		r.ImageURL = models.DefaultRecipeImage
	}
	r.Category = in.Category
	r.PreparationTime = in.PreparationTime
	r.CookingTime = in.CookingTime
	r.Servings = in.Servings
	r.Difficulty = in.Difficulty
}
