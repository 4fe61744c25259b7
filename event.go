package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// newBatch wraps a non-empty drained slice for transport. Callers guarantee
// events is non-empty.
func newBatch(events []Event) Batch {
	return Batch{
		BatchID:     uuid.NewString(),
		CreatedAtMs: time.Now().UnixMilli(),
		Events:      events,
	}
}

// newSessionID mints the session identifier held constant for the process
// lifetime.
func newSessionID() string {
	return uuid.NewString()
}
