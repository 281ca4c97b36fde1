package services

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// UnknownRecipeName labels variants whose recipe no longer exists.
const UnknownRecipeName = "Recette inconnue"

// ProfileVariant is a variant shown with the name of its recipe.
type ProfileVariant struct {
	models.RecipeVariant
	RecipeName string `json:"recipeName"`
}

// Profile lists the variants a user created and the ones they voted for.
type Profile struct {
	User     models.User      `json:"user"`
	Created  []ProfileVariant `json:"created"`
	VotedFor []ProfileVariant `json:"votedFor"`
}

// ProfileService builds the profile page of the session user.
type ProfileService struct {
	recipes  RecipeStore
	variants VariantStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(recipes RecipeStore, variants VariantStore) *ProfileService {
	return &ProfileService{recipes: recipes, variants: variants}
}

// Get returns the profile of the session user.
func (s *ProfileService) Get(ctx context.Context, session models.AuthState) (Profile, error) {
	if err := requireUser(session); err != nil {
		return Profile{}, err
	}

	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load recipes", "error", err)
		return Profile{}, err
	}
	variants, err := s.variants.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load variants", "error", err)
		return Profile{}, err
	}

	names := make(map[string]string, len(recipes))
	for _, r := range recipes {
		names[r.ID] = r.Name
	}
	withName := func(v models.RecipeVariant) ProfileVariant {
		name, ok := names[v.RecipeID]
		if !ok {
			name = UnknownRecipeName
		}
		return ProfileVariant{RecipeVariant: v, RecipeName: name}
	}

	userID := session.UserID()
	profile := Profile{
		User:     withoutPassword(*session.User),
		Created:  []ProfileVariant{},
		VotedFor: []ProfileVariant{},
	}
	for _, v := range variants {
		if v.CreatedBy == userID {
			profile.Created = append(profile.Created, withName(v))
		}
		if v.HasVoted(userID) {
			profile.VotedFor = append(profile.VotedFor, withName(v))
		}
	}
	return profile, nil
}
