package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_PERSON_VECTOR_UPDATED represents the event when a person's
	// interest vector is recomputed and stored.
	EventType_PERSON_VECTOR_UPDATED EventType = "PERSON_VECTOR.UPDATED"
	// EventType_PERSON_VECTOR_CLEARED represents the event when a person's
	// interest vector is removed because no weighted selections remain.
	EventType_PERSON_VECTOR_CLEARED EventType = "PERSON_VECTOR.CLEARED"
)

// PersonVectorEvent represents a vector lifecycle event in the system.
type PersonVectorEvent struct {
	Type      EventType
	PersonID  uuid.UUID
	Dimension int
	CreatedAt time.Time
}

// VectorEventPublisher defines the interface for publishing vector events.
type VectorEventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
