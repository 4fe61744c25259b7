package telemetry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/halcyon-games/telemetry-go/adapters"
)

// Dispatcher drives the drain-and-send cycle. A periodic timer and a queue
// size trigger both funnel into Drain, which moves at most one batch per
// cycle from the live queue to the collector. It also owns the snapshot
// persistence protocol invoked by the lifecycle hooks.
type Dispatcher struct {
	config  DispatcherConfig
	queue   *Queue
	http    HTTPAdapter
	storage SnapshotStorage
	logger  LoggerAdapter
	headers map[string]string

	onEventsSent func(count int)

	ticker       *time.Ticker
	stopChan     chan struct{}
	wg           sync.WaitGroup
	timerStarted bool
	timerMu      sync.Mutex

	draining atomic.Bool
	stopped  atomic.Bool
	inflight sync.WaitGroup
}

func NewDispatcher(config DispatcherConfig, httpAdapter HTTPAdapter, storage SnapshotStorage, headers map[string]string) *Dispatcher {
	return &Dispatcher{
		config:   config,
		queue:    NewQueue(config.MaxQueueEvents),
		http:     httpAdapter,
		storage:  storage,
		logger:   adapters.NewSlogLoggerAdapter(nil),
		headers:  headers,
		stopChan: make(chan struct{}),
	}
}

// SetLoggerAdapter sets a custom logger adapter
func (d *Dispatcher) SetLoggerAdapter(logger LoggerAdapter) {
	d.logger = logger
}

// SetEventsSentFunc sets the callback fired with the event count of every
// batch the collector accepts.
func (d *Dispatcher) SetEventsSentFunc(fn func(count int)) {
	d.onEventsSent = fn
}

// LoadSnapshot merges a persisted queue snapshot, if any, into the live
// queue in original order and deletes the consumed file. Call it once at
// startup, before events are recorded. A corrupted snapshot is discarded;
// startup never fails on it.
func (d *Dispatcher) LoadSnapshot() {
	snapshot, err := d.storage.Load()
	if err != nil {
		d.logger.Error("discarding unreadable queue snapshot: %v", err)
		if clearErr := d.storage.Clear(); clearErr != nil {
			d.logger.Warn("failed to remove unreadable snapshot: %v", clearErr)
		}
		return
	}
	if snapshot == nil {
		return
	}
	for _, event := range snapshot.Events {
		d.queue.Enqueue(event)
	}
	if err := d.storage.Clear(); err != nil {
		d.logger.Warn("failed to remove consumed snapshot: %v", err)
	}
	d.logger.Debug("restored %d events from snapshot persisted at %d", len(snapshot.Events), snapshot.PersistedAtMs)
}

// Enqueue adds one event to the live queue and arms the triggers: the
// periodic timer starts on the first event, and reaching the batch size cap
// requests an immediate asynchronous drain.
func (d *Dispatcher) Enqueue(event Event) {
	if evicted := d.queue.Enqueue(event); evicted {
		d.logger.Warn("queue at capacity, evicted oldest event (size %d)", d.queue.Len())
	}

	d.startTimerIfNeeded()

	if d.queue.Len() >= d.config.BatchSizeCap {
		go d.Drain()
	}
}

// PendingCount returns the number of events waiting in the live queue.
func (d *Dispatcher) PendingCount() int {
	return d.queue.Len()
}

func (d *Dispatcher) startTimerIfNeeded() {
	d.timerMu.Lock()
	defer d.timerMu.Unlock()

	if d.timerStarted || d.stopped.Load() {
		return
	}
	d.ticker = time.NewTicker(d.config.FlushInterval)
	d.timerStarted = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-d.ticker.C:
				d.Drain()
			case <-d.stopChan:
				return
			}
		}
	}()
}

// Drain runs one drain-and-send cycle: remove up to BatchSizeCap events,
// wrap them in a batch, attempt one upload. On any failure the batch's
// events go back to the head of the queue in their original order; retry
// cadence is governed entirely by the periodic timer. A call that arrives
// while another cycle is in flight is coalesced, since the next trigger
// picks up whatever remains queued.
func (d *Dispatcher) Drain() {
	if d.stopped.Load() {
		return
	}
	if !d.draining.CompareAndSwap(false, true) {
		return
	}
	d.inflight.Add(1)
	defer d.inflight.Done()
	defer d.draining.Store(false)

	events := d.queue.DrainUpTo(d.config.BatchSizeCap)
	if len(events) == 0 {
		return
	}

	batch := newBatch(events)
	d.logger.Debug("sending batch %s with %d events", batch.BatchID, len(batch.Events))

	resp, err := d.http.Send(d.config.Endpoint, batch, d.headers)
	if err == nil && resp.Status >= 200 && resp.Status < 300 {
		d.logger.Debug("batch %s accepted by collector", batch.BatchID)
		if d.onEventsSent != nil {
			d.onEventsSent(len(batch.Events))
		}
		return
	}

	if err == nil {
		err = &HTTPError{Status: resp.Status}
	}
	d.logger.Warn("requeueing batch %s after send failure: %v", batch.BatchID, err)
	if evicted := d.queue.RequeueFront(batch.Events); evicted > 0 {
		d.logger.Warn("queue over capacity after requeue, evicted %d oldest events", evicted)
	}
}

// PersistSnapshot writes the live queue to durable storage via a
// non-destructive read. An empty queue writes nothing; any stale snapshot
// from a prior run is deliberately left for the next LoadSnapshot to find.
func (d *Dispatcher) PersistSnapshot() error {
	events := d.queue.Snapshot()
	if len(events) == 0 {
		return nil
	}
	snapshot := QueueSnapshot{
		Version:       adapters.SnapshotVersion,
		PersistedAtMs: time.Now().UnixMilli(),
		Events:        events,
	}
	if err := d.storage.Save(snapshot); err != nil {
		d.logger.Error("failed to persist queue snapshot: %v", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}
	d.logger.Debug("persisted %d queued events", len(events))
	return nil
}

// Shutdown stops the periodic timer, waits up to the configured grace
// period for an in-flight send, then persists whatever remains queued.
// Waiting before persisting lets a failed in-flight batch requeue and land
// in the snapshot; a send still running at grace expiry is abandoned and
// its events are lost for this run.
func (d *Dispatcher) Shutdown() error {
	if !d.stopped.CompareAndSwap(false, true) {
		return nil
	}

	d.timerMu.Lock()
	if d.timerStarted {
		d.ticker.Stop()
	}
	close(d.stopChan)
	d.timerMu.Unlock()
	d.wg.Wait()

	d.waitInflight()

	return d.PersistSnapshot()
}

func (d *Dispatcher) waitInflight() {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d.config.ShutdownGrace):
		d.logger.Warn("shutdown grace period expired with a send in flight, abandoning it")
	}
}
