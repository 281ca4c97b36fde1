package models

// Catalog event types published to the event stream
const (
	EventUserRegistered   = "user.registered"
	EventUserDeleted      = "user.deleted"
	EventRecipeCreated    = "recipe.created"
	EventRecipeUpdated    = "recipe.updated"
	EventRecipeDeleted    = "recipe.deleted"
	EventVariantCreated   = "variant.created"
	EventVariantVoted     = "variant.voted"
	EventVariantUnvoted   = "variant.unvoted"
	EventContactSubmitted = "contact.submitted"
)

// CatalogEvent describes a mutation of the catalog, published as JSON.
type CatalogEvent struct {
	EventID   string `json:"event_id"`          // EventID is a unique identifier of the event.
	Type      string `json:"type"`              // Type is one of the Event* constants.
	EntityID  string `json:"entity_id"`         // EntityID is the id of the mutated entity.
	UserID    string `json:"user_id,omitempty"` // UserID is the user who triggered the event.
	Timestamp int64  `json:"timestamp"`         // Timestamp is the Unix time in milliseconds.
	Payload   any    `json:"payload,omitempty"` // Payload carries event specific data.
}
