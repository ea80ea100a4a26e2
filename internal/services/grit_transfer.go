package services

import (
	"gritd/internal/persistence"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
)

// ExportSnapshot renders the whole store as a versioned, timestamped export
// document.
func (s *GritService) ExportSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return persistence.EncodeExport(s.snapshot(), s.now())
}

// ImportSnapshot replaces all collections with the content of raw. Nothing
// changes when raw is rejected.
func (s *GritService) ImportSnapshot(raw []byte) error {
	snapshot, err := persistence.DecodeSnapshot(raw)
	if err != nil {
		s.logger.Warnf(providers.TypeStore, "Import rejected: %s", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.archiveCurrent("import")
	s.replace(snapshot)
	s.logger.Infof(providers.TypeStore, "Imported %d logs, %d reviews, %d rewards",
		len(s.logs), len(s.reviews), len(s.rewards))
	s.commit()
	return nil
}

func (s *GritService) Archives() ([]interfaces.ArchiveEntry, error) {
	return s.archive.List()
}

// RestoreArchive replaces the store with an archived snapshot.
func (s *GritService) RestoreArchive(name string) error {
	snapshot, err := s.archive.Load(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.archiveCurrent("restore")
	s.replace(snapshot)
	s.logger.Infof(providers.TypeStore, "Restored archive %s", name)
	s.commit()
	return nil
}
