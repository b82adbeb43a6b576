package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event; it doubles as the topic suffix.
type EventType string

const (
	UserRoleRequested    EventType = "user.role_requested"
	ScholarshipCreated   EventType = "scholarship.created"
	ApplicationSubmitted EventType = "application.submitted"
	ReviewCreated        EventType = "review.created"
	PaymentIntentCreated EventType = "payment.intent_created"
)

const (
	EventSource  = "battle-server"
	EventVersion = "1.0"
)

// Event is the envelope published for every domain event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// NewEvent builds an event envelope with a fresh id and the current time
func NewEvent(eventType EventType, data map[string]interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
