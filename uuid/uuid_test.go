package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/event-toolkit/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	assert.NotEqual(t, first, second)

	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("sub")

	assert.Equal(t, "sub-1", gen.New())
	assert.Equal(t, "sub-2", gen.New())
	assert.Equal(t, "sub-3", gen.New())
}

func TestSequenceGeneratorInstancesAreIndependent(t *testing.T) {
	first := uuid.NewSequenceGenerator("a")
	second := uuid.NewSequenceGenerator("b")

	assert.Equal(t, "a-1", first.New())
	assert.Equal(t, "b-1", second.New())
	assert.Equal(t, "a-2", first.New())
}

func TestSequenceGeneratorConcurrent(t *testing.T) {
	gen := uuid.NewSequenceGenerator("sub")

	const workers = 8
	const perWorker = 100

	ids := make(chan string, workers*perWorker)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				ids <- gen.New()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
