package adapters

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileSnapshotStorage is the default snapshot storage implementation.
// It keeps one versioned JSON file, written atomically via a temp file and
// rename so a crash mid-write never leaves a half-written snapshot.
type FileSnapshotStorage struct {
	filepath string
}

// Ensure FileSnapshotStorage implements SnapshotStorage interface
var _ SnapshotStorage = (*FileSnapshotStorage)(nil)

// NewFileSnapshotStorage creates a new FileSnapshotStorage instance.
//
// Parameters:
//   - filepath: Path to the snapshot file, normally under the application's
//     private data directory
func NewFileSnapshotStorage(filepath string) SnapshotStorage {
	return &FileSnapshotStorage{filepath: filepath}
}

// Save writes the snapshot to disk, replacing any prior one.
func (f *FileSnapshotStorage) Save(snapshot QueueSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	tmp := f.filepath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.filepath)
}

// Load reads the snapshot file. Returns nil if no file exists and a
// *CorruptSnapshotError if the file cannot be decoded or carries an
// unknown format version.
func (f *FileSnapshotStorage) Load() (*QueueSnapshot, error) {
	data, err := os.ReadFile(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var snapshot QueueSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, &CorruptSnapshotError{Cause: err}
	}
	if snapshot.Version != SnapshotVersion {
		return nil, &CorruptSnapshotError{Cause: fmt.Errorf("unsupported snapshot version %d", snapshot.Version)}
	}
	return &snapshot, nil
}

// Clear removes the snapshot file. A missing file is not an error.
func (f *FileSnapshotStorage) Clear() error {
	err := os.Remove(f.filepath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
