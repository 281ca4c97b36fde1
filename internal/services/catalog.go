package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// FeaturedCount is the number of recipes shown on the home page.
const FeaturedCount = 3

var (
	ErrRegionRequired    = errors.New("region search requires a region")
	ErrInvalidSearchMode = errors.New("search mode must be name, ingredient or region")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrRegionNotFound    = errors.New("region not found")
)

// RecipeStore defines the recipes collection operations.
type RecipeStore interface {
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Add(ctx context.Context, recipe models.Recipe) error
	Update(ctx context.Context, recipe models.Recipe) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RegionStore defines the regions collection operations.
type RegionStore interface {
	GetAll(ctx context.Context) ([]models.Region, error)
	GetByID(ctx context.Context, id string) (*models.Region, error)
}

// VariantStore defines the recipe-variants collection operations.
type VariantStore interface {
	GetAll(ctx context.Context) ([]models.RecipeVariant, error)
	GetByRecipeID(ctx context.Context, recipeID string) ([]models.RecipeVariant, error)
	Add(ctx context.Context, variant models.RecipeVariant) error
	Modify(ctx context.Context, id string, fn func(*models.RecipeVariant) error) (*models.RecipeVariant, error)
	DeleteByRecipeID(ctx context.Context, recipeID string) (int, error)
}

// RecipeFilter narrows the catalog. Empty fields do not constrain.
type RecipeFilter struct {
	Name     string // case-insensitive substring of the name
	RegionID string // exact region id
	Category string // exact category
}

// FilterRecipes keeps the recipes matching every set field of f, in order.
func FilterRecipes(recipes []models.Recipe, f RecipeFilter) []models.Recipe {
	name := strings.ToLower(f.Name)
	result := []models.Recipe{}
	for _, r := range recipes {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if f.RegionID != "" && r.RegionID != f.RegionID {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		result = append(result, r)
	}
	return result
}

// SearchMode selects which attribute a search looks at.
type SearchMode string

const (
	SearchByName       SearchMode = "name"
	SearchByIngredient SearchMode = "ingredient"
	SearchByRegion     SearchMode = "region"
)

// SearchQuery is a single-mode catalog search.
type SearchQuery struct {
	Mode     SearchMode
	Term     string
	RegionID string
}

// SearchRecipes runs q over recipes. An empty term in name or ingredient
// mode returns the whole catalog.
func SearchRecipes(recipes []models.Recipe, q SearchQuery) ([]models.Recipe, error) {
	switch q.Mode {
	case SearchByName, SearchByIngredient:
	case SearchByRegion:
		if q.RegionID == "" {
			return nil, ErrRegionRequired
		}
	default:
		return nil, ErrInvalidSearchMode
	}

	if q.Term == "" && q.Mode != SearchByRegion {
		return slices.Clone(recipes), nil
	}

	term := strings.ToLower(q.Term)
	result := []models.Recipe{}
	for _, r := range recipes {
		var match bool
		switch q.Mode {
		case SearchByName:
			match = strings.Contains(strings.ToLower(r.Name), term) ||
				(r.NameAr != "" && strings.Contains(r.NameAr, q.Term))
		case SearchByIngredient:
			match = slices.ContainsFunc(r.Ingredients, func(ing string) bool {
				return strings.Contains(strings.ToLower(ing), term)
			})
		case SearchByRegion:
			match = r.RegionID == q.RegionID
		}
		if match {
			result = append(result, r)
		}
	}
	return result, nil
}

// IngredientSuggestions returns the sorted distinct first words of all
// ingredients, lower-cased, ignoring words of three characters or less.
func IngredientSuggestions(recipes []models.Recipe) []string {
	seen := map[string]struct{}{}
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			word, _, _ := strings.Cut(ing, " ")
			word = strings.ToLower(word)
			if utf8.RuneCountInString(word) > 3 {
				seen[word] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(seen))
	for w := range seen {
		result = append(result, w)
	}
	slices.Sort(result)
	return result
}

// RegionDetail is a region with the recipes attached to it.
type RegionDetail struct {
	Region  models.Region   `json:"region"`
	Recipes []models.Recipe `json:"recipes"`
}

// RecipeDetail is a recipe with its region and community variants.
// Region is nil when the recipe points at an unknown region.
type RecipeDetail struct {
	Recipe   models.Recipe          `json:"recipe"`
	Region   *models.Region         `json:"region"`
	Variants []models.RecipeVariant `json:"variants"`
}

// CatalogService answers read-only catalog queries.
type CatalogService struct {
	recipes  RecipeStore
	regions  RegionStore
	variants VariantStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(recipes RecipeStore, regions RegionStore, variants VariantStore) *CatalogService {
	return &CatalogService{
		recipes:  recipes,
		regions:  regions,
		variants: variants,
	}
}

// List returns the recipes matching f.
func (s *CatalogService) List(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load recipes", "error", err)
		return nil, err
	}
	return FilterRecipes(recipes, f), nil
}

// Search runs a single-mode search over the catalog.
func (s *CatalogService) Search(ctx context.Context, q SearchQuery) ([]models.Recipe, error) {
	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load recipes", "error", err)
		return nil, err
	}
	return SearchRecipes(recipes, q)
}

// Featured returns the first FeaturedCount recipes.
func (s *CatalogService) Featured(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load recipes", "error", err)
		return nil, err
	}
	if len(recipes) > FeaturedCount {
		recipes = recipes[:FeaturedCount]
	}
	return recipes, nil
}

// Ingredients returns ingredient suggestions for the search page.
func (s *CatalogService) Ingredients(ctx context.Context) ([]string, error) {
	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load recipes", "error", err)
		return nil, err
	}
	return IngredientSuggestions(recipes), nil
}

// Regions returns every region.
func (s *CatalogService) Regions(ctx context.Context) ([]models.Region, error) {
	regions, err := s.regions.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load regions", "error", err)
		return nil, err
	}
	return regions, nil
}

// RegionDetail returns a region and its recipes.
func (s *CatalogService) RegionDetail(ctx context.Context, id string) (RegionDetail, error) {
	region, err := s.regions.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load region", "region_id", id, "error", err)
		return RegionDetail{}, err
	}
	if region == nil {
		return RegionDetail{}, ErrRegionNotFound
	}

	recipes, err := s.List(ctx, RecipeFilter{RegionID: id})
	if err != nil {
		return RegionDetail{}, err
	}
	return RegionDetail{Region: *region, Recipes: recipes}, nil
}

// RecipeDetail returns a recipe with its region and variants.
func (s *CatalogService) RecipeDetail(ctx context.Context, id string) (RecipeDetail, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load recipe", "recipe_id", id, "error", err)
		return RecipeDetail{}, err
	}
	if recipe == nil {
		return RecipeDetail{}, ErrRecipeNotFound
	}

	region, err := s.regions.GetByID(ctx, recipe.RegionID)
	if err != nil {
		logger.Log.Errorw("failed to load region", "region_id", recipe.RegionID, "error", err)
		return RecipeDetail{}, err
	}

	variants, err := s.variants.GetByRecipeID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load variants", "recipe_id", id, "error", err)
		return RecipeDetail{}, err
	}

	return RecipeDetail{Recipe: *recipe, Region: region, Variants: variants}, nil
}
