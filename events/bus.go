package events

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/event-toolkit/errors"
	"github.com/KirkDiggler/event-toolkit/uuid"
)

// Config holds the optional collaborators for an EventBus. A nil Config or
// nil field falls back to the default.
type Config struct {
	// IDGenerator produces subscription ids. Optional, defaults to
	// uuid.NewGoogleUUIDGenerator().
	IDGenerator uuid.Generator

	// Logger receives listener failure diagnostics. Optional, defaults to
	// a zap development logger writing to stderr.
	Logger *zap.Logger
}

// EventBus manages subscriptions and dispatches events. All registry
// mutation is serialized behind one RWMutex; handlers always run with the
// lock released, so a handler may freely subscribe or unsubscribe without
// deadlocking. Changes made mid-dispatch take effect on the next emit, not
// the one in progress.
type EventBus struct {
	mu      sync.RWMutex
	subs    map[EventType]map[uintptr]*subscription
	nextSeq uint64

	idGen uuid.Generator
	log   *zap.Logger
	stats busStats
}

// NewEventBus creates a new event bus
func NewEventBus(cfg *Config) *EventBus {
	if cfg == nil {
		cfg = &Config{}
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = uuid.NewGoogleUUIDGenerator()
	}

	log := cfg.Logger
	if log == nil {
		log, _ = zap.NewDevelopment()
	}

	return &EventBus{
		subs:  make(map[EventType]map[uintptr]*subscription),
		idGen: idGen,
		log:   log,
	}
}

// handlerKey returns the identity key for a handler func value. Two
// distinct closures over the same code are distinct keys; the same func
// value is always the same key.
func handlerKey(handler Handler) uintptr {
	return reflect.ValueOf(handler).Pointer()
}

// Subscribe adds a handler for a specific event type. Higher priority
// fires earlier; equal priorities fire in registration order. Returns the
// subscription id for later removal via UnsubscribeByID.
func (b *EventBus) Subscribe(eventType EventType, priority int, handler Handler) (string, error) {
	return b.subscribe(eventType, priority, handler, false)
}

// SubscribeOnce adds a handler that is removed after its first successful
// invocation. A handler that fails keeps its subscription.
func (b *EventBus) SubscribeOnce(eventType EventType, priority int, handler Handler) (string, error) {
	return b.subscribe(eventType, priority, handler, true)
}

func (b *EventBus) subscribe(eventType EventType, priority int, handler Handler, once bool) (string, error) {
	if strings.TrimSpace(eventType.String()) == "" {
		return "", errors.InvalidArgument("event type is required")
	}
	if handler == nil {
		return "", errors.InvalidArgument("handler is required")
	}

	key := handlerKey(handler)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subs[eventType][key]; exists {
		return "", errors.DuplicateListenerf("handler already subscribed to event %s", eventType)
	}

	sub := &subscription{
		id:       b.idGen.New(),
		handler:  handler,
		priority: priority,
		once:     once,
		seq:      b.nextSeq,
	}
	b.nextSeq++

	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[uintptr]*subscription)
	}
	b.subs[eventType][key] = sub

	return sub.id, nil
}

// Unsubscribe removes the subscription wrapping this handler. No-op when
// the type or handler is not registered.
func (b *EventBus) Unsubscribe(eventType EventType, handler Handler) {
	if handler == nil {
		return
	}

	key := handlerKey(handler)

	b.mu.Lock()
	defer b.mu.Unlock()

	listeners, ok := b.subs[eventType]
	if !ok {
		return
	}
	if _, ok := listeners[key]; !ok {
		return
	}

	delete(listeners, key)
	if len(listeners) == 0 {
		delete(b.subs, eventType)
	}
}

// UnsubscribeByID removes the subscription with the given id. No-op when
// the type or id is not found.
func (b *EventBus) UnsubscribeByID(eventType EventType, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.removeByIDLocked(eventType, id)
}

// removeByIDLocked scans the type's collection for the matching id and
// removes it, deleting the type entry if the collection empties. Caller
// must hold the write lock.
func (b *EventBus) removeByIDLocked(eventType EventType, id string) {
	listeners, ok := b.subs[eventType]
	if !ok {
		return
	}

	for key, sub := range listeners {
		if sub.id != id {
			continue
		}
		delete(listeners, key)
		if len(listeners) == 0 {
			delete(b.subs, eventType)
		}
		return
	}
}

// RemoveAll drops every subscription for an event type. No-op for an
// unknown type.
func (b *EventBus) RemoveAll(eventType EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subs, eventType)
}

// Clear drops every subscription for every event type
func (b *EventBus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = make(map[EventType]map[uintptr]*subscription)
}

// Emit dispatches an event synchronously to all subscribed handlers in
// priority order. A handler that returns an error or panics is reported to
// the logger and does not stop dispatch to the remaining handlers; Emit
// itself never fails. No listeners for the type is a no-op.
func (b *EventBus) Emit(eventType EventType, payload any) {
	b.dispatch(context.Background(), eventType, payload, false)
}

// EmitAsync dispatches sequentially, waiting for each handler to finish
// its (possibly blocking) work before invoking the next, so priority order
// holds across blocking calls. The context is handed to each handler; the
// bus performs no cancellation of its own and an in-flight dispatch cannot
// be aborted. Returns after every handler has been attempted and one-shot
// cleanup has run.
func (b *EventBus) EmitAsync(ctx context.Context, eventType EventType, payload any) {
	b.dispatch(ctx, eventType, payload, true)
}

func (b *EventBus) dispatch(ctx context.Context, eventType EventType, payload any, async bool) {
	defer b.stats.eventsEmitted.Inc()

	// Snapshot before any handler runs: subscriptions added or removed by
	// a handler mid-dispatch never affect this emit.
	snapshot := b.snapshot(eventType)
	if len(snapshot) == 0 {
		return
	}

	event := NewEvent(eventType, payload)

	var fired []string
	for _, sub := range snapshot {
		if !b.invoke(ctx, sub, event, async) {
			continue
		}

		sub.fireCount.Inc()
		b.stats.listenersInvoked.Inc()
		if sub.once {
			fired = append(fired, sub.id)
		}
	}

	if len(fired) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range fired {
		b.removeByIDLocked(eventType, id)
	}
}

// invoke runs one handler with per-listener isolation: a returned error or
// a panic is logged and reported false, never propagated. Reports true on
// success.
func (b *EventBus) invoke(ctx context.Context, sub *subscription, event *Event, async bool) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		msg := "listener panicked during emit"
		if async {
			msg = "listener panicked during async emit"
		}
		b.stats.listenerPanics.Inc()
		b.log.Error(msg,
			zap.String("event_type", event.Type.String()),
			zap.String("subscription_id", sub.id),
			zap.Any("panic", r),
			zap.Stack("stack"),
		)
		ok = false
	}()

	if err := sub.handler(ctx, event); err != nil {
		msg := "listener failed during emit"
		if async {
			msg = "listener failed during async emit"
		}
		b.stats.listenerErrors.Inc()
		b.log.Error(msg,
			zap.String("event_type", event.Type.String()),
			zap.String("subscription_id", sub.id),
			zap.Error(errors.WrapWithCode(err, errors.CodeListenerFailure, "listener failed")),
		)
		return false
	}

	return true
}

// snapshot returns the type's subscriptions in dispatch order: priority
// descending, then registration sequence ascending. The comparison sort is
// deterministic on its own, so tie-break does not depend on sort
// stability.
func (b *EventBus) snapshot(eventType EventType) []*subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	listeners := b.subs[eventType]
	if len(listeners) == 0 {
		return nil
	}

	snapshot := make([]*subscription, 0, len(listeners))
	for _, sub := range listeners {
		snapshot = append(snapshot, sub)
	}

	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].priority != snapshot[j].priority {
			return snapshot[i].priority > snapshot[j].priority
		}
		return snapshot[i].seq < snapshot[j].seq
	})

	return snapshot
}

// ListenerCount returns the number of subscriptions for an event type
func (b *EventBus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[eventType])
}

// EventNames returns the event types that currently have subscriptions.
// Order is unspecified.
func (b *EventBus) EventNames() []EventType {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]EventType, 0, len(b.subs))
	for eventType := range b.subs {
		names = append(names, eventType)
	}
	return names
}

// Listeners returns subscription details for an event type, sorted the
// same way dispatch fires them. Empty slice for an unknown type.
func (b *EventBus) Listeners(eventType EventType) []ListenerInfo {
	snapshot := b.snapshot(eventType)

	infos := make([]ListenerInfo, 0, len(snapshot))
	for _, sub := range snapshot {
		infos = append(infos, sub.info())
	}
	return infos
}

// Stats returns a snapshot of bus activity counters
func (b *EventBus) Stats() Stats {
	b.mu.RLock()
	total := 0
	for _, listeners := range b.subs {
		total += len(listeners)
	}
	b.mu.RUnlock()

	return b.stats.snapshot(total)
}
