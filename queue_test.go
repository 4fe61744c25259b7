package telemetry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedEvent(name string) Event {
	return Event{Name: name}
}

func queuedNames(events []Event) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue(10)
	q.Enqueue(namedEvent("A"))
	q.Enqueue(namedEvent("B"))
	q.Enqueue(namedEvent("C"))

	drained := q.DrainUpTo(2)
	require.Equal(t, []string{"A", "B"}, queuedNames(drained))

	q.RequeueFront(drained)
	drained = q.DrainUpTo(3)
	require.Equal(t, []string{"A", "B", "C"}, queuedNames(drained))
	assert.Zero(t, q.Len())
}

func TestQueue_DrainEmptyNeverBlocks(t *testing.T) {
	q := NewQueue(10)
	assert.Empty(t, q.DrainUpTo(5))
	assert.Empty(t, q.DrainUpTo(0))
}

func TestQueue_DrainLeavesRemainder(t *testing.T) {
	q := NewQueue(10)
	for i := 0; i < 5; i++ {
		q.Enqueue(namedEvent(fmt.Sprintf("e%d", i)))
	}

	drained := q.DrainUpTo(3)
	require.Len(t, drained, 3)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "e3", q.Snapshot()[0].Name)
}

func TestQueue_CapacityEvictsOldest(t *testing.T) {
	const capacity = 50
	q := NewQueue(capacity)

	for i := 0; i <= capacity; i++ {
		evicted := q.Enqueue(namedEvent(fmt.Sprintf("e%d", i)))
		assert.Equal(t, i == capacity, evicted, "eviction expected only on the overflowing insert")
	}

	require.Equal(t, capacity, q.Len())
	names := queuedNames(q.Snapshot())
	assert.NotContains(t, names, "e0", "earliest event should be evicted")
	assert.Equal(t, fmt.Sprintf("e%d", capacity), names[len(names)-1])
}

func TestQueue_RequeueFrontAheadOfNewer(t *testing.T) {
	q := NewQueue(10)
	q.Enqueue(namedEvent("P"))
	q.Enqueue(namedEvent("Q"))

	drained := q.DrainUpTo(2)
	require.Equal(t, []string{"P", "Q"}, queuedNames(drained))

	q.Enqueue(namedEvent("R"))
	q.RequeueFront(drained)

	assert.Equal(t, []string{"P", "Q", "R"}, queuedNames(q.Snapshot()))
}

func TestQueue_RequeueFrontRespectsCapacity(t *testing.T) {
	q := NewQueue(3)
	q.Enqueue(namedEvent("A"))
	q.Enqueue(namedEvent("B"))
	drained := q.DrainUpTo(2)

	q.Enqueue(namedEvent("C"))
	q.Enqueue(namedEvent("D"))
	q.Enqueue(namedEvent("E"))

	evicted := q.RequeueFront(drained)
	assert.Equal(t, 2, evicted)
	assert.Equal(t, []string{"C", "D", "E"}, queuedNames(q.Snapshot()),
		"oldest of the combined set goes first")
}

func TestQueue_SnapshotIsNonDestructive(t *testing.T) {
	q := NewQueue(10)
	q.Enqueue(namedEvent("X"))
	q.Enqueue(namedEvent("Y"))

	snap := q.Snapshot()
	require.Equal(t, []string{"X", "Y"}, queuedNames(snap))
	assert.Equal(t, 2, q.Len())
}

func TestQueue_ConcurrentEnqueueStaysBounded(t *testing.T) {
	const capacity = 100
	q := NewQueue(capacity)

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				q.Enqueue(namedEvent(fmt.Sprintf("p%d-%d", p, i)))
			}
		}(p)
	}
	wg.Wait()

	assert.Equal(t, capacity, q.Len())
}
