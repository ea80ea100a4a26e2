package persistence

import (
	"gritd/internal/persistence/interfaces"
	"gritd/internal/structures"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseSlot(t *testing.T, slot interfaces.SlotInterface) {
	t.Helper()

	_, err := slot.Read()
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Write([]byte("first")))
	data, err := slot.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	require.NoError(t, slot.Write([]byte("second")))
	data, err = slot.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	require.NoError(t, slot.Remove())
	_, err = slot.Read()
	assert.ErrorIs(t, err, ErrSlotEmpty)
	require.NoError(t, slot.Remove())
}

func TestFileSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grit.json")
	slot := NewFileSlot(path)
	defer slot.Close()

	exerciseSlot(t, slot)
}

func TestFileSlot_NoTempFileLeft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grit.json")
	slot := NewFileSlot(path)

	require.NoError(t, slot.Write([]byte("data")))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSlot_WriteToInvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	slot := NewFileSlot(filepath.Join(blocker, "grit.json"))
	assert.Error(t, slot.Write([]byte("data")))
}

func TestSQLiteSlot(t *testing.T) {
	slot, err := OpenSQLiteSlot(filepath.Join(t.TempDir(), "grit.db"))
	require.NoError(t, err)
	defer slot.Close()

	exerciseSlot(t, slot)
}

func TestNewSlot_Drivers(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{}

	conf.Persistence.FilePath = filepath.Join(dir, "grit.json")
	slot, err := NewSlot(conf)
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	conf.Persistence.Driver = "sqlite"
	conf.Persistence.FilePath = filepath.Join(dir, "grit.db")
	slot, err = NewSlot(conf)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSlot{}, slot)
	require.NoError(t, slot.Close())

	conf.Persistence.Driver = "redis"
	_, err = NewSlot(conf)
	assert.Error(t, err)
}
