package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error to its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, status, internalErrorMessage)
		return
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrRegionNotFound),
		errors.Is(err, services.ErrVariantNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrLastAdmin):
		return http.StatusConflict
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrRegionRequired),
		errors.Is(err, services.ErrInvalidSearchMode),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidDifficulty),
		errors.Is(err, services.ErrInvalidRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeRequest decodes the JSON body into req and validates it. On failure
// it writes a 400 response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.Log.Infow("invalid request body", "uri", r.RequestURI, "err", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validation.ValidateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
