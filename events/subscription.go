package events

import (
	"go.uber.org/atomic"
)

// subscription is one registered interest in an event type. The bus owns
// every subscription exclusively; handlers never see this type.
type subscription struct {
	id       string
	handler  Handler
	priority int
	once     bool

	// seq is the bus-local registration sequence. Equal priorities fire
	// in ascending seq order, so ties break on insertion order.
	seq uint64

	// fireCount advances outside the registry lock during dispatch
	fireCount atomic.Int64
}

// ListenerInfo is the read-only view of a subscription returned by
// Bus.Listeners
type ListenerInfo struct {
	// ID is the subscription id returned at registration
	ID string

	// Handler is the registered callback
	Handler Handler

	// Priority determines dispatch order (higher fires earlier)
	Priority int

	// Once reports whether the subscription is removed after its first
	// successful invocation
	Once bool

	// FireCount is the number of successful invocations so far
	FireCount int64
}

func (s *subscription) info() ListenerInfo {
	return ListenerInfo{
		ID:        s.id,
		Handler:   s.handler,
		Priority:  s.priority,
		Once:      s.once,
		FireCount: s.fireCount.Load(),
	}
}
