package models

// Recipe categories
const (
	CategoryMain    = "plat"
	CategoryDessert = "dessert"
	CategoryDrink   = "boisson"
	CategoryStarter = "entrée"
)

// Recipe difficulties
const (
	DifficultyEasy   = "facile"
	DifficultyMedium = "moyen"
	DifficultyHard   = "difficile"
)

// DefaultRecipeImage is used when a recipe is saved without an image.
const DefaultRecipeImage = "/placeholder-food.jpg"

// Recipe represents a traditional recipe of a region
type Recipe struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	NameAr          string   `json:"nameAr,omitempty"`
	RegionID        string   `json:"regionId"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients"`
	Steps           []string `json:"steps"`
	ImageURL        string   `json:"imageUrl"`
	Category        string   `json:"category"`
	PreparationTime int      `json:"preparationTime"` // minutes
	CookingTime     int      `json:"cookingTime"`     // minutes
	Servings        int      `json:"servings"`
	Difficulty      string   `json:"difficulty"`
	CreatedAt       int64    `json:"createdAt"` // Unix milliseconds
	CreatedBy       string   `json:"createdBy"` // User ID
}
