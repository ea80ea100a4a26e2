package persistence

import (
	"errors"
	"fmt"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/structures"
	"os"
	"path/filepath"
)

// SlotKey names the single slot the snapshot lives in.
const SlotKey = "grit-tracker-storage"

var ErrSlotEmpty = errors.New("persistence: slot is empty")

// NewSlot opens the slot backend selected by persistence.driver.
func NewSlot(conf *structures.Config) (interfaces.SlotInterface, error) {
	switch conf.Persistence.Driver {
	case "", "file":
		return NewFileSlot(conf.Persistence.FilePath), nil
	case "sqlite":
		return OpenSQLiteSlot(conf.Persistence.FilePath)
	default:
		return nil, fmt.Errorf("unknown persistence driver %q", conf.Persistence.Driver)
	}
}

type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (f *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the slot atomically: the data goes to a temp file that is
// synced and then renamed over the target.
func (f *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileSlot) Remove() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileSlot) Close() error {
	return nil
}
