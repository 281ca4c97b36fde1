package services

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// ContactService forwards contact form messages to the event stream.
type ContactService struct {
	events EventPublisher
	opts   options
}

// NewContactService creates a new ContactService.
func NewContactService(events EventPublisher, opts ...Option) *ContactService {
	return &ContactService{events: events, opts: newOptions(opts)}
}

// Submit publishes msg. The returned id identifies the message in logs and events.
func (s *ContactService) Submit(ctx context.Context, session models.AuthState, msg models.ContactMessage) string {
	id := newID(s.opts.now())
	logger.Log.Infow("contact message received", "message_id", id, "email", msg.Email, "subject", msg.Subject)
	publish(ctx, s.events, s.opts, models.EventContactSubmitted, id, session.UserID(), msg)
	return id
}
