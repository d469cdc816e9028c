package events

import "context"

// EventType identifies a named event channel. Any non-blank string is a
// valid type; producers and consumers agree on the names out of band.
type EventType string

// String returns the string representation of the event type
func (t EventType) String() string {
	return string(t)
}

// Event is what handlers receive: the type it was emitted under plus the
// caller-supplied payload. The bus constructs one Event per dispatch and
// shares it across all listeners of that dispatch.
type Event struct {
	Type    EventType
	Payload any
}

// NewEvent creates an event for manual dispatch or tests
func NewEvent(eventType EventType, payload any) *Event {
	return &Event{
		Type:    eventType,
		Payload: payload,
	}
}

// Handler processes a single event. During EmitAsync it receives the
// caller's context and may block; the bus itself never cancels an
// in-flight dispatch.
//
// The bus identifies a handler by its code pointer. Named functions and
// methods are each one identity; closures built from the same func
// literal share identity even when they capture different variables, so
// they count as the same listener for duplicate detection and for
// Unsubscribe. Use distinct functions, or remove by subscription id, when
// that matters.
type Handler func(ctx context.Context, event *Event) error
