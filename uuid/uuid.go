// uuid simple generator that allows mocking
package uuid

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Generator is an interface for generating subscription ids. Implementations
// must never return the same id twice from one instance.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator issues prefix-N ids from a per-instance monotonic
// counter. Ids are predictable, which makes it the generator of choice in
// tests; separate instances own separate counters, so two registries never
// contend or couple through shared state.
type SequenceGenerator struct {
	prefix string
	n      atomic.Uint64
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Inc())
}

// NewSequenceGenerator creates a SequenceGenerator whose ids carry the
// given prefix
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}
