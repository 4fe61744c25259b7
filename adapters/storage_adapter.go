package adapters

// SnapshotStorage is the persistence boundary for queue snapshots.
// Implement this interface to use custom storage backends.
type SnapshotStorage interface {
	// Save writes the snapshot durably, overwriting any prior one.
	Save(snapshot QueueSnapshot) error

	// Load reads the persisted snapshot. It returns nil with no error
	// when no snapshot exists. A snapshot that exists but cannot be
	// decoded yields a *CorruptSnapshotError.
	Load() (*QueueSnapshot, error)

	// Clear removes the persisted snapshot, if any.
	Clear() error
}

// CorruptSnapshotError reports a snapshot that exists but cannot be decoded.
type CorruptSnapshotError struct {
	Cause error
}

func (e *CorruptSnapshotError) Error() string {
	return "corrupt queue snapshot: " + e.Cause.Error()
}

func (e *CorruptSnapshotError) Unwrap() error {
	return e.Cause
}
