package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

var ErrVariantNotFound = errors.New("variant not found")

// ApplyToggleVote adds userID to the voters of v, or removes it when it is
// already there, keeping Votes equal to len(VoterIDs). It reports whether
// the user now votes for the variant.
func ApplyToggleVote(v *models.RecipeVariant, userID string) bool {
	if i := slices.Index(v.VoterIDs, userID); i >= 0 {
		v.VoterIDs = slices.Delete(slices.Clone(v.VoterIDs), i, i+1)
		v.Votes--
		return false
	}
	v.VoterIDs = append(slices.Clone(v.VoterIDs), userID)
	v.Votes++
	return true
}

// VariantInput is a variant submitted for an existing recipe.
type VariantInput struct {
	Name        string
	Description string
	Ingredients []string
	Steps       []string
}

// VariantService handles variant submission and voting.
type VariantService struct {
	recipes  RecipeStore
	variants VariantStore
	events   EventPublisher
	opts     options
}

// NewVariantService creates a new VariantService.
func NewVariantService(recipes RecipeStore, variants VariantStore, events EventPublisher, opts ...Option) *VariantService {
	return &VariantService{
		recipes:  recipes,
		variants: variants,
		events:   events,
		opts:     newOptions(opts),
	}
}

// Submit adds a variant to a recipe on behalf of the session user.
// The variant reuses the image of its recipe and starts without votes.
func (s *VariantService) Submit(ctx context.Context, session models.AuthState, recipeID string, in VariantInput) (models.RecipeVariant, error) {
	if err := requireUser(session); err != nil {
		return models.RecipeVariant{}, err
	}

	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to load recipe", "recipe_id", recipeID, "error", err)
		return models.RecipeVariant{}, err
	}
	if recipe == nil {
		return models.RecipeVariant{}, ErrRecipeNotFound
	}

	now := s.opts.now()
	variant := models.RecipeVariant{
		ID:          newID(now),
		RecipeID:    recipe.ID,
		Name:        in.Name,
		Description: in.Description,
		Ingredients: cleanLines(in.Ingredients),
		Steps:       cleanLines(in.Steps),
		ImageURL:    recipe.ImageURL,
		CreatedAt:   now.UnixMilli(),
		CreatedBy:   session.UserID(),
		Votes:       0,
		VoterIDs:    []string{},
	}
	if err := s.variants.Add(ctx, variant); err != nil {
		logger.Log.Errorw("failed to add variant", "recipe_id", recipeID, "error", err)
		return models.RecipeVariant{}, err
	}

	logger.Log.Infow("variant submitted", "variant_id", variant.ID, "recipe_id", recipe.ID, "user_id", session.UserID())
	publish(ctx, s.events, s.opts, models.EventVariantCreated, variant.ID, session.UserID(), map[string]string{"recipeId": recipe.ID})
	return variant, nil
}

// ToggleVote flips the session user's vote on a variant.
// Unauthenticated sessions get ErrUnauthenticated and nothing is written.
func (s *VariantService) ToggleVote(ctx context.Context, session models.AuthState, variantID string) (models.RecipeVariant, error) {
	if err := requireUser(session); err != nil {
		return models.RecipeVariant{}, err
	}

	userID := session.UserID()
	var voted bool
	updated, err := s.variants.Modify(ctx, variantID, func(v *models.RecipeVariant) error {
		voted = ApplyToggleVote(v, userID)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to toggle vote", "variant_id", variantID, "error", err)
		return models.RecipeVariant{}, err
	}
	if updated == nil {
		return models.RecipeVariant{}, ErrVariantNotFound
	}

	eventType := models.EventVariantUnvoted
	if voted {
		eventType = models.EventVariantVoted
	}
	logger.Log.Infow("vote toggled", "variant_id", variantID, "user_id", userID, "voted", voted, "votes", updated.Votes)
	publish(ctx, s.events, s.opts, eventType, variantID, userID, map[string]int{"votes": updated.Votes})
	return *updated, nil
}

// cleanLines drops blank entries.
func cleanLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			result = append(result, l)
		}
	}
	return result
}
