package persistence

import (
	"github.com/roylee0704/gron"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"gritd/internal/structures"
	"sync"
	"time"
)

const archivePruneInterval = time.Hour

// Scheduler refreshes the current week and month cache buckets on an
// interval, so the cache rolls over at midnight without waiting for a
// mutation, and prunes old archives.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	refresher interfaces.RefresherInterface
	archive   interfaces.ArchiveInterface
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.RefreshInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.refresh()
	})

	s.cron.AddFunc(gron.Every(archivePruneInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.archive.Prune(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while pruning archives: %s", err)
		}
	})

	s.cron.Start()
}

func (s *Scheduler) refresh() {
	if s.refresher.RefreshCurrentPeriod() {
		s.logger.Infof(providers.TypeApp, "Current period statistics refreshed")
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting store to %s...", s.config.Persistence.FilePath)
	err := s.refresher.Persist()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, refresher interfaces.RefresherInterface, archive interfaces.ArchiveInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		refresher: refresher,
		archive:   archive,
	}
}
