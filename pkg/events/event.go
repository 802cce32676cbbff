package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PROMPT_COMPILED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewWorkflowEvent builds a lifecycle event for a workflow action. userId may
// be uuid.Nil for anonymous sessions; consumers that need an identity skip
// those.
func NewWorkflowEvent(eventType string, sessionId string, userId uuid.UUID, extra map[string]interface{}) BaseEvent {
	data := map[string]interface{}{
		"session_id": sessionId,
	}
	if userId != uuid.Nil {
		data["user_id"] = userId.String()
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
