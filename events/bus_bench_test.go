package events_test

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/KirkDiggler/event-toolkit/events"
)

func newBenchBus() *events.EventBus {
	return events.NewEventBus(&events.Config{Logger: zap.NewNop()})
}

func BenchmarkEventBusEmit(b *testing.B) {
	bus := newBenchBus()

	// Distinct func literals so each registers as its own listener
	handlers := []events.Handler{
		func(_ context.Context, _ *events.Event) error { return nil },
		func(_ context.Context, _ *events.Event) error { return nil },
		func(_ context.Context, _ *events.Event) error { return nil },
		func(_ context.Context, _ *events.Event) error { return nil },
		func(_ context.Context, _ *events.Event) error { return nil },
	}
	for i, handler := range handlers {
		if _, err := bus.Subscribe("bench.emit", i, handler); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Emit("bench.emit", i)
	}
}

func BenchmarkEventBusEmitSingleListener(b *testing.B) {
	bus := newBenchBus()
	if _, err := bus.Subscribe("bench.emit", events.PriorityNormal, func(_ context.Context, _ *events.Event) error {
		return nil
	}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Emit("bench.emit", i)
	}
}

func BenchmarkEventBusEmitNoListeners(b *testing.B) {
	bus := newBenchBus()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Emit("bench.emit", i)
	}
}

func BenchmarkEventBusEmitAsync(b *testing.B) {
	bus := newBenchBus()
	ctx := context.Background()
	if _, err := bus.Subscribe("bench.emit", events.PriorityNormal, func(_ context.Context, _ *events.Event) error {
		return nil
	}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.EmitAsync(ctx, "bench.emit", i)
	}
}

func BenchmarkEventBusSubscribe(b *testing.B) {
	bus := newBenchBus()
	handler := func(_ context.Context, _ *events.Event) error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eventType := events.EventType(fmt.Sprintf("bench.%d", i))
		if _, err := bus.Subscribe(eventType, events.PriorityNormal, handler); err != nil {
			b.Fatal(err)
		}
	}
}
