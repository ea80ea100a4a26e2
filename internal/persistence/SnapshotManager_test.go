package persistence

import (
	"errors"
	"gritd/internal/structures"
	"gritd/internal/testutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, compress bool) (*SnapshotManager, *FileSlot, *testutil.MockMetrics) {
	t.Helper()
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)

	conf := &structures.Config{}
	conf.Persistence.Compress = compress
	slot := NewFileSlot(filepath.Join(t.TempDir(), "grit.json"))
	metrics := &testutil.MockMetrics{}
	m := NewSnapshotManager(conf, slot, c, &testutil.MockLogger{}, metrics).(*SnapshotManager)
	return m, slot, metrics
}

func TestSnapshotManager_LoadEmpty(t *testing.T) {
	m, _, _ := newManager(t, false)
	snap, err := m.Load()
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotManager_SaveLoad(t *testing.T) {
	for _, compress := range []bool{false, true} {
		m, slot, metrics := newManager(t, compress)
		require.NoError(t, m.Save(sampleSnapshot()))
		assert.Equal(t, 1, metrics.PersistCalls)

		raw, err := slot.Read()
		require.NoError(t, err)
		assert.Equal(t, compress, isCompressed(raw))

		snap, err := m.Load()
		require.NoError(t, err)
		assert.Equal(t, sampleSnapshot(), snap)
	}
}

func TestSnapshotManager_ReadsEitherEncoding(t *testing.T) {
	plain, slot, _ := newManager(t, false)
	require.NoError(t, plain.Save(sampleSnapshot()))

	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()
	conf := &structures.Config{}
	conf.Persistence.Compress = true
	compressed := NewSnapshotManager(conf, slot, c, &testutil.MockLogger{}, &testutil.MockMetrics{})

	snap, err := compressed.Load()
	require.NoError(t, err)
	assert.Len(t, snap.GritLogs, 2)
}

func TestSnapshotManager_CorruptSlot(t *testing.T) {
	m, slot, _ := newManager(t, false)
	require.NoError(t, slot.Write([]byte("definitely not json")))

	snap, err := m.Load()
	assert.ErrorIs(t, err, ErrInvalidImport)
	assert.Nil(t, snap)
}

func TestSnapshotManager_CompressError(t *testing.T) {
	conf := &structures.Config{}
	conf.Persistence.Compress = true
	path := filepath.Join(t.TempDir(), "grit.json")
	comp := &testutil.MockCompressor{CompressFn: func([]byte) ([]byte, error) {
		return nil, errors.New("compress failed")
	}}
	m := NewSnapshotManager(conf, NewFileSlot(path), comp, &testutil.MockLogger{}, &testutil.MockMetrics{})

	assert.Error(t, m.Save(sampleSnapshot()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotManager_Clear(t *testing.T) {
	m, _, _ := newManager(t, true)
	require.NoError(t, m.Save(sampleSnapshot()))
	require.NoError(t, m.Clear())

	snap, err := m.Load()
	assert.NoError(t, err)
	assert.Nil(t, snap)
}
