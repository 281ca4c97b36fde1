package handlers

//go:generate mockgen -source=variants.go -destination=variants_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
)

// VariantSubmitter defines the interface that the service must implement.
type VariantSubmitter interface {
	Submit(ctx context.Context, session models.AuthState, recipeID string, in services.VariantInput) (models.RecipeVariant, error)
}

// VoteToggler defines the interface that the service must implement.
type VoteToggler interface {
	ToggleVote(ctx context.Context, session models.AuthState, variantID string) (models.RecipeVariant, error)
}

// VariantRequest represents the JSON body of a variant submission
// swagger:model VariantRequest
type VariantRequest struct {
	// Variant name
	// required: true
	Name string `json:"name" validate:"required"`

	// Short description
	Description string `json:"description"`

	// Ingredients, one per entry
	// required: true
	Ingredients []string `json:"ingredients" validate:"required,min=1"`

	// Steps, one per entry
	// required: true
	Steps []string `json:"steps" validate:"required,min=1"`
}

// NewSubmitVariantHandler returns an HTTP handler that adds a variant to a recipe.
// @Summary Submit a variant
// @Description Adds a community variant to a recipe. Blank ingredient and step lines are dropped.
// @Tags variants
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param variantRequest body handlers.VariantRequest true "Variant"
// @Success 201 {object} models.RecipeVariant "Created variant"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /recipes/{id}/variants [post]
// @Security BearerAuth
func NewSubmitVariantHandler(svc VariantSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VariantRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		variant, err := svc.Submit(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id"), services.VariantInput{
			Name:        req.Name,
			Description: req.Description,
			Ingredients: req.Ingredients,
			Steps:       req.Steps,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, variant)
	}
}

// NewToggleVoteHandler returns an HTTP handler that toggles the caller's vote.
// @Summary Toggle vote
// @Description Adds the caller's vote to a variant, or removes it when already present.
// @Tags variants
// @Produce json
// @Param id path string true "Variant id"
// @Success 200 {object} models.RecipeVariant "Updated variant"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Variant not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /variants/{id}/vote [post]
// @Security BearerAuth
func NewToggleVoteHandler(svc VoteToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variant, err := svc.ToggleVote(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, variant)
	}
}
