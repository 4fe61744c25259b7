package adapters

// Event represents one recorded occurrence plus its recording context.
// Once constructed it is never mutated; field names follow the collector's
// wire format.
type Event struct {
	Name              string         `json:"eventName"`
	Properties        map[string]any `json:"properties"`
	ExperimentID      *string        `json:"experimentId"`
	Cohort            *string        `json:"cohort"`
	ClientTimestampMs int64          `json:"clientTimestampMs"`
	SessionID         string         `json:"sessionId"`
	Platform          string         `json:"platform"`
	GameVersion       string         `json:"gameVersion"`
	PlayerID          *string        `json:"playerId"`
}

// Batch is an ordered, capped group of events uploaded to the collector as
// one unit. A batch is never constructed empty.
type Batch struct {
	BatchID     string  `json:"batchId"`
	CreatedAtMs int64   `json:"createdAtMs"`
	Events      []Event `json:"events"`
}

// SnapshotVersion is the current on-disk snapshot format version.
const SnapshotVersion = 1

// QueueSnapshot is the durable form of the live queue, written at
// suspend/shutdown and consumed once on the next startup.
type QueueSnapshot struct {
	Version       int     `json:"version"`
	PersistedAtMs int64   `json:"persistedAtMs"`
	Events        []Event `json:"events"`
}
