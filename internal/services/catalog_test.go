package services_test

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []models.Recipe{
	{ID: "a", Name: "Harira", NameAr: "حريرة", RegionID: "3", Category: models.CategoryStarter, Ingredients: []string{"200g de lentilles", "Tomates"}},
	{ID: "b", Name: "Tajine d'agneau", RegionID: "7", Category: models.CategoryMain, Ingredients: []string{"1kg d'agneau", "Pruneaux secs"}},
	{ID: "c", Name: "Chebakia", RegionID: "3", Category: models.CategoryDessert, Ingredients: []string{"Farine", "Miel", "sésame grillé"}},
	{ID: "d", Name: "Thé à la menthe", RegionID: "6", Category: models.CategoryDrink, Ingredients: []string{"Menthe fraîche", "thé vert", "Sucre"}},
}

func TestFilterRecipes(t *testing.T) {
	tests := []struct {
		name   string
		filter services.RecipeFilter
		want   []string
	}{
		{name: "no constraint", filter: services.RecipeFilter{}, want: []string{"a", "b", "c", "d"}},
		{name: "name is case insensitive", filter: services.RecipeFilter{Name: "TAJ"}, want: []string{"b"}},
		{name: "region", filter: services.RecipeFilter{RegionID: "3"}, want: []string{"a", "c"}},
		{name: "region without recipes", filter: services.RecipeFilter{RegionID: "12"}, want: []string{}},
		{name: "category", filter: services.RecipeFilter{Category: models.CategoryDrink}, want: []string{"d"}},
		{name: "combined", filter: services.RecipeFilter{Name: "a", RegionID: "3", Category: models.CategoryDessert}, want: []string{"c"}},
		{name: "combined no match", filter: services.RecipeFilter{Name: "harira", Category: models.CategoryMain}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.FilterRecipes(catalog, tt.filter)
			assert.Equal(t, tt.want, recipeIDs(got))
		})
	}
}

func TestSearchRecipes(t *testing.T) {
	tests := []struct {
		name    string
		query   services.SearchQuery
		want    []string
		wantErr error
	}{
		{name: "name", query: services.SearchQuery{Mode: services.SearchByName, Term: "tajine"}, want: []string{"b"}},
		{name: "arabic name", query: services.SearchQuery{Mode: services.SearchByName, Term: "حريرة"}, want: []string{"a"}},
		{name: "empty name term returns all", query: services.SearchQuery{Mode: services.SearchByName}, want: []string{"a", "b", "c", "d"}},
		{name: "ingredient", query: services.SearchQuery{Mode: services.SearchByIngredient, Term: "MIEL"}, want: []string{"c"}},
		{name: "ingredient substring", query: services.SearchQuery{Mode: services.SearchByIngredient, Term: "menthe"}, want: []string{"d"}},
		{name: "empty ingredient term returns all", query: services.SearchQuery{Mode: services.SearchByIngredient}, want: []string{"a", "b", "c", "d"}},
		{name: "region", query: services.SearchQuery{Mode: services.SearchByRegion, RegionID: "7"}, want: []string{"b"}},
		{name: "region ignores term", query: services.SearchQuery{Mode: services.SearchByRegion, Term: "harira", RegionID: "7"}, want: []string{"b"}},
		{name: "region required", query: services.SearchQuery{Mode: services.SearchByRegion}, wantErr: services.ErrRegionRequired},
		{name: "unknown mode", query: services.SearchQuery{Mode: "color", Term: "x"}, wantErr: services.ErrInvalidSearchMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.SearchRecipes(catalog, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipeIDs(got))
		})
	}
}

func TestIngredientSuggestions(t *testing.T) {
	got := services.IngredientSuggestions(catalog)
	// "1kg" and "thé" are too short.
	assert.Equal(t, []string{"200g", "farine", "menthe", "miel", "pruneaux", "sucre", "sésame", "tomates"}, got)
}

func TestIngredientSuggestions_Empty(t *testing.T) {
	assert.Empty(t, services.IngredientSuggestions(nil))
}

func TestCatalogService_SeededCatalog(t *testing.T) {
	f := newFixture(t)
	svc := services.NewCatalogService(f.recipes, f.regions, f.variants)
	ctx := context.Background()

	all, err := svc.List(ctx, services.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, recipeIDs(all))

	byRegion, err := svc.List(ctx, services.RecipeFilter{RegionID: "7"})
	require.NoError(t, err)
	assert.Contains(t, recipeIDs(byRegion), "1")

	empty, err := svc.List(ctx, services.RecipeFilter{RegionID: "12"})
	require.NoError(t, err)
	assert.Empty(t, empty)

	byName, err := svc.Search(ctx, services.SearchQuery{Mode: services.SearchByName, Term: "tajine"})
	require.NoError(t, err)
	assert.Contains(t, recipeIDs(byName), "1")

	byIngredient, err := svc.Search(ctx, services.SearchQuery{Mode: services.SearchByIngredient, Term: "citron"})
	require.NoError(t, err)
	assert.Contains(t, recipeIDs(byIngredient), "1")

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, services.FeaturedCount)

	ingredients, err := svc.Ingredients(ctx)
	require.NoError(t, err)
	assert.Contains(t, ingredients, "huile")
	assert.Contains(t, ingredients, "bouquet")
	assert.IsIncreasing(t, ingredients)

	regions, err := svc.Regions(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, 12)
}

func TestCatalogService_Featured(t *testing.T) {
	f := newEmptyFixture(t)
	svc := services.NewCatalogService(f.recipes, f.regions, f.variants)
	ctx := context.Background()

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Empty(t, featured)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, f.recipes.Add(ctx, models.Recipe{ID: id}))
	}
	featured, err = svc.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, recipeIDs(featured))
}

func TestCatalogService_RegionDetail(t *testing.T) {
	f := newFixture(t)
	svc := services.NewCatalogService(f.recipes, f.regions, f.variants)
	ctx := context.Background()

	detail, err := svc.RegionDetail(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Marrakech-Safi", detail.Region.Name)
	assert.Equal(t, []string{"1"}, recipeIDs(detail.Recipes))

	detail, err = svc.RegionDetail(ctx, "12")
	require.NoError(t, err)
	assert.Empty(t, detail.Recipes)

	_, err = svc.RegionDetail(ctx, "99")
	assert.ErrorIs(t, err, services.ErrRegionNotFound)
}

func TestCatalogService_RecipeDetail(t *testing.T) {
	f := newFixture(t)
	svc := services.NewCatalogService(f.recipes, f.regions, f.variants)
	ctx := context.Background()

	detail, err := svc.RecipeDetail(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tajine de poulet aux olives et citrons confits", detail.Recipe.Name)
	require.NotNil(t, detail.Region)
	assert.Equal(t, "7", detail.Region.ID)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, "Tajine de poulet aux abricots", detail.Variants[0].Name)

	detail, err = svc.RecipeDetail(ctx, "2")
	require.NoError(t, err)
	assert.NotNil(t, detail.Variants)
	assert.Empty(t, detail.Variants)

	_, err = svc.RecipeDetail(ctx, "404")
	assert.ErrorIs(t, err, services.ErrRecipeNotFound)
}
