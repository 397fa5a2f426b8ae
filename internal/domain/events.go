package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of a domain event.
type EventType string

const (
	// EventType_DIALOGUE_TURN_COMPLETED is emitted after the assistant has
	// persisted its reply for a turn.
	EventType_DIALOGUE_TURN_COMPLETED EventType = "DIALOGUE_TURN.COMPLETED"
)

// DialogueTurnEvent is the domain event recorded for every completed turn.
type DialogueTurnEvent struct {
	Type      EventType
	TurnID    uuid.UUID
	UserID    string
	Intent    Intent
	Source    IntentSource
	CreatedAt time.Time
}

// EventPublisher publishes outbox events to the event bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
