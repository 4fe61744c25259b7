package adapters

// NoopSnapshotStorage is a snapshot storage that persists nothing.
// Use it when events that survive a restart are not worth a disk write.
type NoopSnapshotStorage struct{}

// Ensure NoopSnapshotStorage implements SnapshotStorage interface
var _ SnapshotStorage = (*NoopSnapshotStorage)(nil)

// NewNoopSnapshotStorage creates a new NoopSnapshotStorage instance.
func NewNoopSnapshotStorage() SnapshotStorage {
	return &NoopSnapshotStorage{}
}

// Save does nothing.
func (n *NoopSnapshotStorage) Save(snapshot QueueSnapshot) error {
	return nil
}

// Load always reports that no snapshot exists.
func (n *NoopSnapshotStorage) Load() (*QueueSnapshot, error) {
	return nil, nil
}

// Clear does nothing.
func (n *NoopSnapshotStorage) Clear() error {
	return nil
}
