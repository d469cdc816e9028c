// Package eventstest provides helpers for testing code that produces or
// consumes bus events.
package eventstest

import (
	"context"
	"sync"

	"github.com/KirkDiggler/event-toolkit/events"
)

// Recorded is one delivered event as seen by a Recorder
type Recorded struct {
	Type    events.EventType
	Payload any
}

// Recorder captures every event delivered to its handler so tests can
// assert on what a producer emitted. Safe for use from concurrent emits.
//
//	rec := eventstest.NewRecorder()
//	id, err := rec.Attach(bus, "order.created", events.PriorityNormal)
type Recorder struct {
	mu       sync.Mutex
	recorded []Recorded
}

// NewRecorder creates a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handler returns the recording handler. One Recorder may watch any
// number of event types, but the bus identifies handlers by code pointer,
// so two Recorders cannot both watch the same event type on one bus.
func (r *Recorder) Handler() events.Handler {
	return func(_ context.Context, event *events.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.recorded = append(r.recorded, Recorded{Type: event.Type, Payload: event.Payload})
		return nil
	}
}

// Attach subscribes the recorder to the bus for an event type and returns
// the subscription id
func (r *Recorder) Attach(bus events.Bus, eventType events.EventType, priority int) (string, error) {
	return bus.Subscribe(eventType, priority, r.Handler())
}

// Events returns a copy of everything recorded so far, in delivery order
func (r *Recorder) Events() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Recorded, len(r.recorded))
	copy(out, r.recorded)
	return out
}

// Payloads returns just the recorded payloads, in delivery order
func (r *Recorder) Payloads() []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]any, 0, len(r.recorded))
	for _, rec := range r.recorded {
		out = append(out, rec.Payload)
	}
	return out
}

// Len returns the number of recorded events
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.recorded)
}

// Reset discards everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recorded = nil
}
