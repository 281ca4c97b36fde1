package handlers

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
)

// CatalogReader defines the read-only catalog queries.
type CatalogReader interface {
	List(ctx context.Context, f services.RecipeFilter) ([]models.Recipe, error)
	Search(ctx context.Context, q services.SearchQuery) ([]models.Recipe, error)
	Featured(ctx context.Context) ([]models.Recipe, error)
	Ingredients(ctx context.Context) ([]string, error)
	Regions(ctx context.Context) ([]models.Region, error)
	RegionDetail(ctx context.Context, id string) (services.RegionDetail, error)
	RecipeDetail(ctx context.Context, id string) (services.RecipeDetail, error)
}

// NewListRecipesHandler returns the recipes matching the query filters.
// @Summary List recipes
// @Description Filters are combined. Name matches a case-insensitive substring, region and category match exactly.
// @Tags catalog
// @Produce json
// @Param name query string false "Part of the recipe name"
// @Param regionId query string false "Region id"
// @Param category query string false "Category" Enums(plat, dessert, boisson, entrée)
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes [get]
func NewListRecipesHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		recipes, err := svc.List(r.Context(), services.RecipeFilter{
			Name:     q.Get("name"),
			RegionID: q.Get("regionId"),
			Category: q.Get("category"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewSearchRecipesHandler runs a single-mode search.
// @Summary Search recipes
// @Description Searches by name, ingredient or region. An empty term returns every recipe except in region mode, which needs regionId.
// @Tags catalog
// @Produce json
// @Param mode query string false "Search mode" Enums(name, ingredient, region) default(name)
// @Param q query string false "Search term"
// @Param regionId query string false "Region id for region mode"
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 400 {object} handlers.ErrorResponse "Unknown mode or missing region"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/search [get]
func NewSearchRecipesHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mode := services.SearchMode(q.Get("mode"))
		if mode == "" {
			mode = services.SearchByName
		}

		recipes, err := svc.Search(r.Context(), services.SearchQuery{
			Mode:     mode,
			Term:     q.Get("q"),
			RegionID: q.Get("regionId"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewFeaturedRecipesHandler returns the recipes shown on the home page.
// @Summary Featured recipes
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/featured [get]
func NewFeaturedRecipesHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.Featured(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewIngredientsHandler returns ingredient suggestions.
// @Summary Ingredient suggestions
// @Description Sorted distinct main ingredients of the catalog.
// @Tags catalog
// @Produce json
// @Success 200 {array} string "Ingredients"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/ingredients [get]
func NewIngredientsHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.Ingredients(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewRecipeDetailHandler returns a recipe with its region and variants.
// @Summary Recipe detail
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} services.RecipeDetail "Recipe detail"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/{id} [get]
func NewRecipeDetailHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.RecipeDetail(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// NewRegionsHandler returns every region.
// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Region "Regions"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /regions [get]
func NewRegionsHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := svc.Regions(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, regions)
	}
}

// NewRegionDetailHandler returns a region with its recipes.
// @Summary Region detail
// @Tags catalog
// @Produce json
// @Param id path string true "Region id"
// @Success 200 {object} services.RegionDetail "Region detail"
// @Failure 404 {object} handlers.ErrorResponse "Region not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /regions/{id} [get]
func NewRegionDetailHandler(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.RegionDetail(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}
