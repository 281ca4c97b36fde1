package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
)

// UserManager defines the admin user operations.
type UserManager interface {
	List(ctx context.Context, session models.AuthState) ([]models.User, error)
	Add(ctx context.Context, session models.AuthState, username, password, role string) (models.User, error)
	Edit(ctx context.Context, session models.AuthState, id, username, password, role string) (models.User, error)
	Delete(ctx context.Context, session models.AuthState, id string) error
}

// RecipeManager defines the admin recipe operations.
type RecipeManager interface {
	Create(ctx context.Context, session models.AuthState, in services.RecipeInput) (models.Recipe, error)
	Update(ctx context.Context, session models.AuthState, id string, in services.RecipeInput) (models.Recipe, error)
	Delete(ctx context.Context, session models.AuthState, id string) error
}

// UserRequest represents the JSON body of an admin user creation or edit
// swagger:model UserRequest
type UserRequest struct {
	// Username
	// required: true
	Username string `json:"username" validate:"required"`

	// Password, may be empty on edit to keep the current one
	Password string `json:"password"`

	// Role
	// required: true
	// default: user
	Role string `json:"role" validate:"required,role"`
}

// RecipeRequest represents the JSON body of an admin recipe creation or update
// swagger:model RecipeRequest
type RecipeRequest struct {
	Name            string   `json:"name" validate:"required"`
	NameAr          string   `json:"nameAr"`
	RegionID        string   `json:"regionId" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Ingredients     []string `json:"ingredients" validate:"required,min=1"`
	Steps           []string `json:"steps" validate:"required,min=1"`
	ImageURL        string   `json:"imageUrl"`
	Category        string   `json:"category" validate:"required"`
	PreparationTime int      `json:"preparationTime" validate:"gte=0"`
	CookingTime     int      `json:"cookingTime" validate:"gte=0"`
	Servings        int      `json:"servings" validate:"gte=1"`
	Difficulty      string   `json:"difficulty" validate:"required"`
}

func (req RecipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		Name:            req.Name,
		NameAr:          req.NameAr,
		RegionID:        req.RegionID,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Steps:           req.Steps,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		PreparationTime: req.PreparationTime,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
	}
}

// NewListUsersHandler returns every user.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.User "Users without passwords"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Admin role required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context(), middlewares.SessionFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewAddUserHandler returns an HTTP handler that creates a user.
// @Summary Add a user
// @Tags admin
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "User"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or password too short"
// @Failure 403 {object} handlers.ErrorResponse "Admin role required"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/users [post]
// @Security BearerAuth
func NewAddUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.Add(r.Context(), middlewares.SessionFromContext(r.Context()), req.Username, req.Password, req.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewEditUserHandler returns an HTTP handler that edits a user.
// @Summary Edit a user
// @Description An empty password keeps the current one. The last administrator cannot be demoted.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param userRequest body handlers.UserRequest true "User"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or password too short"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists or last administrator"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/users/{id} [put]
// @Security BearerAuth
func NewEditUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.Edit(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id"), req.Username, req.Password, req.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user.
// @Summary Delete a user
// @Tags admin
// @Param id path string true "User id"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Last administrator"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewCreateRecipeHandler returns an HTTP handler that creates a recipe.
// @Summary Create a recipe
// @Tags admin
// @Accept json
// @Produce json
// @Param recipeRequest body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} models.Recipe "Created recipe"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Region not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/recipes [post]
// @Security BearerAuth
func NewCreateRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		recipe, err := svc.Create(r.Context(), middlewares.SessionFromContext(r.Context()), req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewUpdateRecipeHandler returns an HTTP handler that updates a recipe.
// @Summary Update a recipe
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param recipeRequest body handlers.RecipeRequest true "Recipe"
// @Success 200 {object} models.Recipe "Updated recipe"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Recipe or region not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/recipes/{id} [put]
// @Security BearerAuth
func NewUpdateRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		recipe, err := svc.Update(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id"), req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewDeleteRecipeHandler returns an HTTP handler that deletes a recipe and its variants.
// @Summary Delete a recipe
// @Tags admin
// @Param id path string true "Recipe id"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/recipes/{id} [delete]
// @Security BearerAuth
func NewDeleteRecipeHandler(svc RecipeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middlewares.SessionFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
