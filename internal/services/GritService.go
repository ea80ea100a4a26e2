package services

import (
	"errors"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"gritd/internal/calendar"
	"gritd/internal/models"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"gritd/internal/statistic"
	"sync"
	"time"
)

type View string

const (
	ViewDashboard     View = "dashboard"
	ViewRecord        View = "record"
	ViewReview        View = "review"
	ViewReviewHistory View = "review-history"
	ViewRewards       View = "rewards"
)

var ErrUnknownView = errors.New("unknown view")

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewRecord, ViewReview, ViewReviewHistory, ViewRewards:
		return true
	}
	return false
}

type GritServiceInterface interface {
	AddLog(in models.NewLog) models.GritLog
	UpdateLog(id string, patch models.LogPatch) (models.GritLog, bool)
	DeleteLog(id string) bool
	Logs() []models.GritLog
	Log(id string) (models.GritLog, bool)
	LogsForDateRange(from, to string) []models.GritLog
	RecentLogs(limit int) []models.GritLog

	SaveWeeklyReview(in models.NewReview) models.WeeklyReview
	GetWeeklyReview(weekStart string) (models.WeeklyReview, bool)
	Reviews() []models.WeeklyReview
	ReviewDetails(id string) (models.ReviewDetails, bool)

	AddReward(in models.NewReward) models.RewardSetting
	UpdateReward(id string, patch models.RewardPatch) (models.RewardSetting, bool)
	SetRewardCompleted(id string, completed bool) (models.RewardSetting, bool)
	DeleteReward(id string) bool
	Rewards() []models.RewardSetting
	NextReward() (models.RewardProgress, bool)
	RewardTargetExists(target int) bool
	CheckRewards() []models.RewardSetting

	Today() string
	WeeklyTotalScore() int
	CumulativeTotalScore() int
	WeeklyRecordCount() int
	WeeklyAverageDifficulty() float64
	ScoreTrend(days int) []models.TrendPoint
	WeeklyStats(weekStart string) models.WeeklyStats
	MonthlyStats(month string) models.MonthlyStats
	Summary() models.Summary
	CachedWeeklyStats() map[string]models.WeeklyStats
	CachedMonthlyStats() map[string]models.MonthlyStats
	RefreshCurrentPeriod() bool

	CurrentView() View
	SetCurrentView(view View) error

	ResetAll()
	ClearStorage() error
	ExportSnapshot() ([]byte, error)
	ImportSnapshot(raw []byte) error
	Archives() ([]interfaces.ArchiveEntry, error)
	RestoreArchive(name string) error

	Revision() uint64
	Persist() error
}

// GritService owns every tracker collection. Public methods hold mu for their
// whole duration, so each one is atomic with respect to the others; the
// unexported helpers expect mu to be held.
type GritService struct {
	mu       sync.Mutex
	logs     []models.GritLog
	reviews  []models.WeeklyReview
	rewards  []models.RewardSetting
	weekly   map[string]models.WeeklyStats
	monthly  map[string]models.MonthlyStats
	view     View
	revision atomic.Uint64

	store   interfaces.SnapshotStoreInterface
	archive interfaces.ArchiveInterface
	clock   providers.Clock
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	newID   func() string
}

// NewGritService rehydrates the store from the snapshot slot. A missing or
// unreadable snapshot starts the store empty.
func NewGritService(logger providers.Logger, clock providers.Clock, store interfaces.SnapshotStoreInterface, archive interfaces.ArchiveInterface, metrics providers.MetricsProviderInterface) GritServiceInterface {
	s := &GritService{
		store:   store,
		archive: archive,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
		newID:   uuid.NewString,
	}

	snapshot, err := store.Load()
	switch {
	case err != nil:
		logger.Warnf(providers.TypeStore, "Stored snapshot is unreadable, starting empty: %s", err)
		snapshot = models.NewSnapshot()
	case snapshot == nil:
		logger.Infof(providers.TypeStore, "No stored snapshot, starting empty")
		snapshot = models.NewSnapshot()
	default:
		logger.Infof(providers.TypeStore, "Restored %d logs, %d reviews, %d rewards",
			len(snapshot.GritLogs), len(snapshot.WeeklyReviews), len(snapshot.RewardSettings))
	}
	s.replace(snapshot)
	s.view = ViewDashboard
	s.updateGauges()
	return s
}

// now is the timestamp stored on entities: UTC without a monotonic reading,
// so it survives a JSON round trip unchanged.
func (s *GritService) now() time.Time {
	return s.clock.Now().Round(0).UTC()
}

func (s *GritService) today() string {
	return calendar.Today(s.clock.Now(), s.clock.Location())
}

func (s *GritService) replace(snapshot *models.Snapshot) {
	snapshot.Normalize()
	s.logs = snapshot.GritLogs
	s.reviews = snapshot.WeeklyReviews
	s.rewards = snapshot.RewardSettings
	s.weekly = snapshot.WeeklyStats
	s.monthly = snapshot.MonthlyStats
}

func (s *GritService) snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		GritLogs:       s.logs,
		WeeklyReviews:  s.reviews,
		RewardSettings: s.rewards,
		WeeklyStats:    s.weekly,
		MonthlyStats:   s.monthly,
	}
	return snap.Clone()
}

// commit bumps the revision and mirrors the state into the slot. A failed
// write is logged; the in-memory state stays authoritative.
func (s *GritService) commit() {
	s.revision.Inc()
	s.updateGauges()
	if err := s.store.Save(s.snapshot()); err != nil {
		s.metrics.IncPersistenceErrors()
		s.logger.Errorf(providers.TypeStore, "Error while persisting snapshot: %s", err)
	}
}

func (s *GritService) updateGauges() {
	s.metrics.SetLogsTotal(len(s.logs))
	s.metrics.SetCumulativeScore(statistic.TotalScore(s.logs))
}

// refreshBuckets recomputes the cached week and month containing date.
func (s *GritService) refreshBuckets(date string) {
	weekStart, err := calendar.WeekStart(date)
	if err != nil {
		s.logger.Warnf(providers.TypeStore, "Skipping cache refresh: %s", err)
		return
	}
	month, _ := calendar.MonthKey(date)
	s.weekly[weekStart] = statistic.Weekly(s.logs, weekStart)
	s.monthly[month] = statistic.Monthly(s.logs, month)
}

func (s *GritService) archiveCurrent(reason string) {
	if len(s.logs) == 0 && len(s.reviews) == 0 && len(s.rewards) == 0 {
		return
	}
	if err := s.archive.Store(reason, s.snapshot()); err != nil {
		s.logger.Errorf(providers.TypeStore, "Unable to archive snapshot before %s: %s", reason, err)
	}
}

func (s *GritService) Revision() uint64 {
	return s.revision.Load()
}

func (s *GritService) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(s.snapshot())
}

func (s *GritService) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetCurrentView changes the transient view selection. It is never persisted.
func (s *GritService) SetCurrentView(view View) error {
	if !view.Valid() {
		return ErrUnknownView
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	s.revision.Inc()
	return nil
}

// ResetAll empties every collection and cache and returns to the dashboard.
func (s *GritService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.archiveCurrent("reset")
	s.replace(models.NewSnapshot())
	s.view = ViewDashboard
	s.logger.Warnf(providers.TypeStore, "All data reset")
	s.commit()
}

// ClearStorage removes the persisted slot and starts over from an empty
// store, as a fresh process would.
func (s *GritService) ClearStorage() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.archiveCurrent("clear")
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.replace(models.NewSnapshot())
	s.view = ViewDashboard
	s.revision.Inc()
	s.updateGauges()
	s.logger.Warnf(providers.TypeStore, "Storage cleared")
	return nil
}
