package telemetry

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any enqueue count, drain size and interleaved enqueues, a
// drain-requeue-drain cycle yields the exact original FIFO order.
func TestProperty_QueueDrainRequeueRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("requeued events drain ahead of newer ones in original order", prop.ForAll(
		func(initial, drainN, newer int) bool {
			q := NewQueue(initial + newer)
			for i := 0; i < initial; i++ {
				q.Enqueue(namedEvent(fmt.Sprintf("old-%d", i)))
			}

			drained := q.DrainUpTo(drainN)
			for i := 0; i < newer; i++ {
				q.Enqueue(namedEvent(fmt.Sprintf("new-%d", i)))
			}
			q.RequeueFront(drained)

			all := q.DrainUpTo(initial + newer)
			if len(all) != initial+newer {
				return false
			}
			for i := 0; i < initial; i++ {
				if all[i].Name != fmt.Sprintf("old-%d", i) {
					return false
				}
			}
			for i := 0; i < newer; i++ {
				if all[initial+i].Name != fmt.Sprintf("new-%d", i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 50),
		gen.IntRange(0, 20),
	))

	properties.Property("size never exceeds capacity", prop.ForAll(
		func(capacity, inserts int) bool {
			q := NewQueue(capacity)
			for i := 0; i < inserts; i++ {
				q.Enqueue(namedEvent(fmt.Sprintf("e%d", i)))
				if q.Len() > capacity {
					return false
				}
			}
			return q.Len() == min(capacity, inserts)
		},
		gen.IntRange(1, 100),
		gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}
