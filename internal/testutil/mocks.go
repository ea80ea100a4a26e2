package testutil

import (
	"errors"
	"gritd/internal/models"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"net/http"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// FixedClock implements providers.Clock with a settable time.
type FixedClock struct {
	mu  sync.Mutex
	T   time.Time
	Loc *time.Location
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{T: t, Loc: time.UTC}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.T
}

func (c *FixedClock) Location() *time.Location {
	return c.Loc
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.T = c.T.Add(d)
}

// MockSnapshotStore implements interfaces.SnapshotStoreInterface in memory.
type MockSnapshotStore struct {
	mu      sync.Mutex
	Stored  *models.Snapshot
	LoadErr error
	SaveErr error
	Saves   int
	Clears  int
}

func (m *MockSnapshotStore) Save(snapshot *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = snapshot.Clone()
	return nil
}

func (m *MockSnapshotStore) Load() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Stored == nil {
		return nil, nil
	}
	return m.Stored.Clone(), nil
}

func (m *MockSnapshotStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
	m.Stored = nil
	return nil
}

// MockArchive implements interfaces.ArchiveInterface in memory.
type MockArchive struct {
	mu      sync.Mutex
	Entries map[string]*models.Snapshot
	Order   []string
}

func NewMockArchive() *MockArchive {
	return &MockArchive{Entries: make(map[string]*models.Snapshot)}
}

func (m *MockArchive) Store(reason string, snapshot *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := reason + "-" + time.Now().Format(time.RFC3339Nano)
	m.Entries[name] = snapshot.Clone()
	m.Order = append(m.Order, name)
	return nil
}

func (m *MockArchive) List() ([]interfaces.ArchiveEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]interfaces.ArchiveEntry, 0, len(m.Order))
	for i := len(m.Order) - 1; i >= 0; i-- {
		out = append(out, interfaces.ArchiveEntry{Name: m.Order[i]})
	}
	return out, nil
}

func (m *MockArchive) Load(name string) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Entries[name]
	if !ok {
		return nil, errors.New("archive not found")
	}
	return s.Clone(), nil
}

func (m *MockArchive) Prune() error { return nil }

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	PersistCalls     int
	PersistErrors    int
	LogsTotal        int
	CumulativeScore  int
	RewardsCompleted int
	CacheHits        int
	CacheMisses      int
	Requests         map[string]int
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Requests == nil {
		m.Requests = make(map[string]int)
	}
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
}
func (m *MockMetrics) IncPersistenceErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistErrors++
}
func (m *MockMetrics) SetLogsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogsTotal = count
}
func (m *MockMetrics) SetCumulativeScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CumulativeScore = score
}
func (m *MockMetrics) AddRewardsCompleted(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RewardsCompleted += count
}
func (m *MockMetrics) Handler() http.Handler { return http.NotFoundHandler() }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Purges int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Purges++
}

func (m *MockCache) Stats() providers.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return providers.CacheStats{Enabled: true, Entries: int64(len(m.Data))}
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
