package models

import "slices"

// RecipeVariant is a community submitted version of an existing recipe.
// Votes always equals len(VoterIDs).
type RecipeVariant struct {
	ID          string   `json:"id"`
	RecipeID    string   `json:"recipeId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	CreatedBy   string   `json:"createdBy"`
	Votes       int      `json:"votes"`
	VoterIDs    []string `json:"voterIds"`
}

// HasVoted reports whether userID is among the voters.
func (v RecipeVariant) HasVoted(userID string) bool {
	return slices.Contains(v.VoterIDs, userID)
}
