package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents something that happened to a stored record
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
}

// Record change event types
const (
	EventRecordCreated = "RecordCreated"
	EventRecordUpdated = "RecordUpdated"
	EventRecordDeleted = "RecordDeleted"
)

// RecordEventTypes lists every record change event type
func RecordEventTypes() []string {
	return []string{EventRecordCreated, EventRecordUpdated, EventRecordDeleted}
}

// BaseDomainEvent provides common fields for all domain events
type BaseDomainEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AggID     uuid.UUID `json:"aggregate_id"`
	AggType   string    `json:"aggregate_type"`
}

// EventID returns the unique event identifier
func (e *BaseDomainEvent) EventID() uuid.UUID {
	return e.ID
}

// EventType returns the type of the event
func (e *BaseDomainEvent) EventType() string {
	return e.Type
}

// OccurredAt returns when the event occurred
func (e *BaseDomainEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID returns the ID of the record the event is about
func (e *BaseDomainEvent) AggregateID() uuid.UUID {
	return e.AggID
}

// AggregateType returns the entity name of the record, e.g. "Asset"
func (e *BaseDomainEvent) AggregateType() string {
	return e.AggType
}

// NewBaseDomainEvent creates a new base domain event
func NewBaseDomainEvent(eventType, aggType string, aggID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		AggID:     aggID,
		AggType:   aggType,
	}
}

// RecordChanged is published after a create, update or delete has been committed
type RecordChanged struct {
	BaseDomainEvent
}

// NewRecordChanged creates a record change event
func NewRecordChanged(eventType, entity string, id uuid.UUID) *RecordChanged {
	return &RecordChanged{BaseDomainEvent: NewBaseDomainEvent(eventType, entity, id)}
}
