package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (models.AuthState, string, error)
}

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (models.AuthState, string, error)
}

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context) error
}

// StateReader reads the last persisted authentication state.
type StateReader interface {
	CurrentState(ctx context.Context) (models.AuthState, error)
}

// CredentialsRequest represents the JSON body for registration and login
// swagger:model CredentialsRequest
type CredentialsRequest struct {
	// Username
	// required: true
	// default: user
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: user123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful registration or login
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token to send as "Authorization: Bearer <token>"
	Token string `json:"token"`

	// Authenticated session
	Session models.AuthState `json:"session"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account with the "user" role and logs it in. Passwords need at least 6 characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.CredentialsRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User registered and logged in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or password too short"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		state, token, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, Session: state})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Checks the credentials and returns a JWT with the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.CredentialsRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Logged in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		state, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, Session: state})
	}
}

// NewLogoutHandler returns an HTTP handler that stores the logged out state.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}
		logger.Log.Infow("user logged out", "user_id", middlewares.SessionFromContext(r.Context()).UserID())
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}

// NewSessionHandler returns the session of the caller.
// @Summary Current session
// @Description Returns the session resolved from the bearer token, logged out when there is none.
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthState "Session"
// @Router /session [get]
// @Security BearerAuth
func NewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, middlewares.SessionFromContext(r.Context()))
	}
}

// NewLastSessionHandler returns the last persisted login or logout state.
// @Summary Last stored session
// @Description Returns the state written by the most recent login, registration or logout.
// @Tags admin
// @Produce json
// @Success 200 {object} models.AuthState "Session"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Failure 403 {object} handlers.ErrorResponse "Admin role required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/session [get]
// @Security BearerAuth
func NewLastSessionHandler(svc StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.CurrentState(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}
