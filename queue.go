package telemetry

import (
	"container/list"
	"sync"
)

// Queue is a thread-safe bounded FIFO deque of events. When full, Enqueue
// evicts the oldest event rather than rejecting the newest one: recent
// events are assumed more diagnostically valuable.
type Queue struct {
	mu       sync.Mutex
	list     *list.List
	capacity int
}

// NewQueue creates an empty queue holding at most capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultMaxQueueEvents
	}
	return &Queue{list: list.New(), capacity: capacity}
}

// Enqueue appends an event at the tail. It reports whether an older event
// was evicted to stay within capacity.
func (q *Queue) Enqueue(event Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	evicted := false
	if q.list.Len() >= q.capacity {
		q.list.Remove(q.list.Front())
		evicted = true
	}
	q.list.PushBack(event)
	return evicted
}

// DrainUpTo atomically removes and returns up to n events from the head in
// FIFO order. It never blocks; an empty queue yields nil.
func (q *Queue) DrainUpTo(n int) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n <= 0 || q.list.Len() == 0 {
		return nil
	}
	count := min(n, q.list.Len())
	events := make([]Event, 0, count)
	for i := 0; i < count; i++ {
		front := q.list.Front()
		q.list.Remove(front)
		events = append(events, front.Value.(Event))
	}
	return events
}

// RequeueFront atomically reinserts a previously drained slice at the head,
// ahead of anything enqueued since the drain, preserving its order. The
// oldest events among the combined set are evicted if capacity would be
// exceeded; the eviction count is returned.
func (q *Queue) RequeueFront(events []Event) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := len(events) - 1; i >= 0; i-- {
		q.list.PushFront(events[i])
	}
	evicted := 0
	for q.list.Len() > q.capacity {
		q.list.Remove(q.list.Front())
		evicted++
	}
	return evicted
}

// Len returns the number of events currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Snapshot returns the queued events in order without removing them.
func (q *Queue) Snapshot() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := make([]Event, 0, q.list.Len())
	for e := q.list.Front(); e != nil; e = e.Next() {
		events = append(events, e.Value.(Event))
	}
	return events
}
