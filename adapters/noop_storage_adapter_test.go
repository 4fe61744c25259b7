package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSnapshotStorage(t *testing.T) {
	storage := NewNoopSnapshotStorage()

	assert.NoError(t, storage.Save(testSnapshot("X")))

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "noop storage never reports a snapshot")

	assert.NoError(t, storage.Clear())
}
