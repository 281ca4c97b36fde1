package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes catalog events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.CatalogEvent)
}

// KafkaEventPublisher writes catalog events to Kafka as JSON keyed by entity id.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a publisher. A nil writer disables publishing.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish sends the event. Failures are logged and otherwise ignored.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event models.CatalogEvent) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "entity_id", event.EntityID)
	}
}

// publish builds and sends an event when a publisher is configured.
func publish(ctx context.Context, p EventPublisher, o options, eventType, entityID, userID string, payload any) {
	if p == nil {
		return
	}
	p.Publish(ctx, models.CatalogEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		UserID:    userID,
		Timestamp: o.now().UnixMilli(),
		Payload:   payload,
	})
}
