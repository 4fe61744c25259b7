package telemetry

import (
	"fmt"

	"github.com/halcyon-games/telemetry-go/adapters"
)

// Re-export adapter types for convenience
type (
	Event           = adapters.Event
	Batch           = adapters.Batch
	QueueSnapshot   = adapters.QueueSnapshot
	HTTPAdapter     = adapters.HTTPAdapter
	HTTPResponse    = adapters.HTTPResponse
	SnapshotStorage = adapters.SnapshotStorage
	LoggerAdapter   = adapters.LoggerAdapter
	LogLevel        = adapters.LogLevel
)

// HTTPError reports a collector response outside the 2xx range.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("collector rejected batch: status %d", e.Status)
}
