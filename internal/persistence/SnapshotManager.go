package persistence

import (
	"errors"
	"gritd/internal/models"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"gritd/internal/structures"
	"time"
)

// SnapshotManager mirrors store snapshots into a slot.
type SnapshotManager struct {
	slot       interfaces.SlotInterface
	compressor interfaces.CompressorInterface
	compress   bool
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewSnapshotManager(conf *structures.Config, slot interfaces.SlotInterface, compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.SnapshotStoreInterface {
	return &SnapshotManager{
		slot:       slot,
		compressor: compressor,
		compress:   conf.Persistence.Compress,
		logger:     logger,
		metrics:    metrics,
	}
}

func (m *SnapshotManager) Save(snapshot *models.Snapshot) error {
	start := time.Now()
	defer func() {
		m.metrics.ObservePersistenceDuration(time.Since(start))
	}()

	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if m.compress {
		data, err = m.compressor.Compress(data)
		if err != nil {
			return err
		}
	}
	return m.slot.Write(data)
}

func (m *SnapshotManager) Load() (*models.Snapshot, error) {
	data, err := m.slot.Read()
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return nil, nil
		}
		return nil, err
	}

	// The slot may have been written with compression toggled either way.
	if isCompressed(data) {
		data, err = m.compressor.Decompress(data)
		if err != nil {
			return nil, err
		}
	}
	return DecodeSnapshot(data)
}

func (m *SnapshotManager) Clear() error {
	return m.slot.Remove()
}
