package repositories

import "github.com/sbilibin2017/gw-recipe-atlas/internal/models"

// RecipeRepository gives access to the recipes collection.
// Deleting a recipe does not touch its variants; callers cascade through
// RecipeVariantRepository.DeleteByRecipeID.
type RecipeRepository struct {
	*collection[models.Recipe]
}

func NewRecipeRepository(store KeyValueStore, prefix string) *RecipeRepository {
	return &RecipeRepository{
		collection: newCollection(store, prefix, RecipesCollection, func(r models.Recipe) string { return r.ID }),
	}
}
