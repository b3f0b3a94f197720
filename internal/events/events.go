package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Change event types.
const (
	CandidateAdded     = "candidate.added"
	CandidateEdited    = "candidate.edited"
	CandidateDeleted   = "candidate.deleted"
	InterviewScheduled = "interview.scheduled"
	InterviewDeleted   = "interview.deleted"
)

// ChangeEvent records one successful change to the roster or the schedule.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the change event type constants
	Type string `json:"type"`

	// Payload describes the changed entity, serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *ChangeEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewChangeEvent creates a new ChangeEvent with the specified type and payload.
func NewChangeEvent(eventType string, payload interface{}) (*ChangeEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &ChangeEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *ChangeEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows handlers to publish changes without knowing who consumes them.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
