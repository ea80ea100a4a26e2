package interfaces

import "gritd/internal/models"

type SnapshotStoreInterface interface {
	Save(snapshot *models.Snapshot) error
	// Load returns nil without error when nothing has been saved yet.
	Load() (*models.Snapshot, error)
	Clear() error
}

type ArchiveEntry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Size   int64  `json:"size"`
}

type ArchiveInterface interface {
	Store(reason string, snapshot *models.Snapshot) error
	List() ([]ArchiveEntry, error)
	Load(name string) (*models.Snapshot, error)
	Prune() error
}
