package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// RecipeVariantRepository gives access to the recipe-variants collection.
type RecipeVariantRepository struct {
	*collection[models.RecipeVariant]
}

func NewRecipeVariantRepository(store KeyValueStore, prefix string) *RecipeVariantRepository {
	return &RecipeVariantRepository{
		collection: newCollection(store, prefix, VariantsCollection, func(v models.RecipeVariant) string { return v.ID }),
	}
}

// GetByRecipeID returns the variants of a recipe in stored order.
func (r *RecipeVariantRepository) GetByRecipeID(ctx context.Context, recipeID string) ([]models.RecipeVariant, error) {
	variants, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []models.RecipeVariant{}
	for _, v := range variants {
		if v.RecipeID == recipeID {
			result = append(result, v)
		}
	}
	return result, nil
}

// DeleteByRecipeID removes every variant of a recipe.
func (r *RecipeVariantRepository) DeleteByRecipeID(ctx context.Context, recipeID string) (int, error) {
	return r.DeleteWhere(ctx, func(v models.RecipeVariant) bool { return v.RecipeID == recipeID })
}
