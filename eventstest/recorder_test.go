package eventstest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/event-toolkit/events"
	mockevents "github.com/KirkDiggler/event-toolkit/events/mock"
	"github.com/KirkDiggler/event-toolkit/eventstest"
	"github.com/KirkDiggler/event-toolkit/uuid"
)

func newBus(t *testing.T) *events.EventBus {
	t.Helper()
	return events.NewEventBus(&events.Config{
		IDGenerator: uuid.NewSequenceGenerator("sub"),
		Logger:      zaptest.NewLogger(t),
	})
}

func TestRecorderCapturesInOrder(t *testing.T) {
	bus := newBus(t)
	rec := eventstest.NewRecorder()

	_, err := rec.Attach(bus, "order.created", events.PriorityNormal)
	require.NoError(t, err)

	bus.Emit("order.created", 1)
	bus.Emit("order.created", 2)

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, []any{1, 2}, rec.Payloads())
	assert.Equal(t, []eventstest.Recorded{
		{Type: "order.created", Payload: 1},
		{Type: "order.created", Payload: 2},
	}, rec.Events())
}

func TestRecorderAcrossTypes(t *testing.T) {
	bus := newBus(t)
	rec := eventstest.NewRecorder()

	_, err := rec.Attach(bus, "order.created", events.PriorityNormal)
	require.NoError(t, err)
	_, err = rec.Attach(bus, "order.shipped", events.PriorityNormal)
	require.NoError(t, err)

	bus.Emit("order.created", "a")
	bus.Emit("order.shipped", "b")

	recorded := rec.Events()
	require.Len(t, recorded, 2)
	assert.Equal(t, events.EventType("order.created"), recorded[0].Type)
	assert.Equal(t, events.EventType("order.shipped"), recorded[1].Type)
}

func TestRecorderReset(t *testing.T) {
	bus := newBus(t)
	rec := eventstest.NewRecorder()

	_, err := rec.Attach(bus, "order.created", events.PriorityNormal)
	require.NoError(t, err)

	bus.Emit("order.created", 1)
	require.Equal(t, 1, rec.Len())

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	assert.Empty(t, rec.Events())

	bus.Emit("order.created", 2)
	assert.Equal(t, []any{2}, rec.Payloads())
}

func TestRecorderEventsReturnsCopy(t *testing.T) {
	bus := newBus(t)
	rec := eventstest.NewRecorder()

	_, err := rec.Attach(bus, "order.created", events.PriorityNormal)
	require.NoError(t, err)

	bus.Emit("order.created", 1)

	first := rec.Events()
	first[0].Payload = "mutated"

	assert.Equal(t, []any{1}, rec.Payloads())
}

func TestRecorderAttachesThroughBusInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBus := mockevents.NewMockBus(ctrl)
	rec := eventstest.NewRecorder()

	mockBus.EXPECT().
		Subscribe(events.EventType("order.created"), events.PriorityLast, gomock.Any()).
		Return("sub-1", nil)

	id, err := rec.Attach(mockBus, "order.created", events.PriorityLast)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", id)
}
