package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/services"
)

// ProfileReader defines the interface that the service must implement.
type ProfileReader interface {
	Get(ctx context.Context, session models.AuthState) (services.Profile, error)
}

// ContactSubmitter defines the interface that the service must implement.
type ContactSubmitter interface {
	Submit(ctx context.Context, session models.AuthState, msg models.ContactMessage) string
}

// NewProfileHandler returns the profile of the caller.
// @Summary Profile
// @Description Variants created by the caller and variants the caller voted for.
// @Tags profile
// @Produce json
// @Success 200 {object} services.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Get(r.Context(), middlewares.SessionFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// ContactRequest represents the JSON body of a contact message
// swagger:model ContactRequest
type ContactRequest struct {
	// Sender name
	// required: true
	Name string `json:"name" validate:"required"`

	// Sender email
	// required: true
	Email string `json:"email" validate:"required,email"`

	// Subject
	// required: true
	Subject string `json:"subject" validate:"required"`

	// Message
	// required: true
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a contact message
// swagger:model ContactResponse
type ContactResponse struct {
	// Message id
	ID string `json:"id"`

	// Success message
	// default: Message received
	Message string `json:"message"`
}

// NewContactHandler returns an HTTP handler for the contact form.
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Contact message"
// @Success 202 {object} handlers.ContactResponse "Message accepted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /contact [post]
func NewContactHandler(svc ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		id := svc.Submit(r.Context(), middlewares.SessionFromContext(r.Context()), models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		writeJSON(w, http.StatusAccepted, ContactResponse{ID: id, Message: "Message received"})
	}
}
