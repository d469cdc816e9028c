package events

import "context"

//go:generate mockgen -destination=mock/mock_bus.go -package=mockevents -source=interface.go Bus

// Bus is the interface for event bus implementations
type Bus interface {
	// Subscribe adds a handler for a specific event type and returns the
	// subscription's generated id
	Subscribe(eventType EventType, priority int, handler Handler) (string, error)

	// SubscribeOnce adds a handler that is removed after its first
	// successful invocation
	SubscribeOnce(eventType EventType, priority int, handler Handler) (string, error)

	// Unsubscribe removes the subscription wrapping this handler, if any
	Unsubscribe(eventType EventType, handler Handler)

	// UnsubscribeByID removes the subscription with the given id, if any
	UnsubscribeByID(eventType EventType, id string)

	// RemoveAll drops every subscription for an event type
	RemoveAll(eventType EventType)

	// Clear drops every subscription for every event type
	Clear()

	// Emit dispatches an event synchronously to all subscribed handlers
	Emit(eventType EventType, payload any)

	// EmitAsync dispatches sequentially, waiting for each handler to
	// finish its (possibly blocking) work before invoking the next
	EmitAsync(ctx context.Context, eventType EventType, payload any)

	// ListenerCount returns the number of subscriptions for an event type
	ListenerCount(eventType EventType) int

	// EventNames returns the event types that currently have subscriptions
	EventNames() []EventType

	// Listeners returns subscription details for an event type in
	// dispatch order
	Listeners(eventType EventType) []ListenerInfo
}
