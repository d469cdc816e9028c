package events

import "go.uber.org/atomic"

// Stats is a point-in-time snapshot of bus activity
type Stats struct {
	// EventsEmitted is the number of completed Emit/EmitAsync calls,
	// including dispatches to zero listeners
	EventsEmitted int64

	// ListenersInvoked is the number of successful handler invocations
	ListenersInvoked int64

	// ListenerErrors is the number of handlers that returned an error
	ListenerErrors int64

	// ListenerPanics is the number of handlers that panicked
	ListenerPanics int64

	// Subscriptions is the current live subscription count across all
	// event types
	Subscriptions int
}

// busStats holds the atomic counters behind Stats. Counters advance
// outside the registry lock, so they are atomics rather than
// mutex-guarded ints.
type busStats struct {
	eventsEmitted    atomic.Int64
	listenersInvoked atomic.Int64
	listenerErrors   atomic.Int64
	listenerPanics   atomic.Int64
}

func (s *busStats) snapshot(subscriptions int) Stats {
	return Stats{
		EventsEmitted:    s.eventsEmitted.Load(),
		ListenersInvoked: s.listenersInvoked.Load(),
		ListenerErrors:   s.listenerErrors.Load(),
		ListenerPanics:   s.listenerPanics.Load(),
		Subscriptions:    subscriptions,
	}
}
