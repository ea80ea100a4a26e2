package persistence

import (
	"errors"
	"gritd/internal/structures"
	"gritd/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type mockRefresher struct {
	refreshes  atomic.Int32
	persists   atomic.Int32
	changed    bool
	persistErr error
}

func (m *mockRefresher) RefreshCurrentPeriod() bool {
	m.refreshes.Inc()
	return m.changed
}

func (m *mockRefresher) Persist() error {
	m.persists.Inc()
	return m.persistErr
}

func schedulerConfig() *structures.Config {
	conf := &structures.Config{}
	conf.Persistence.RefreshInterval = 1 * time.Second
	conf.Persistence.FilePath = "grit.json"
	return conf
}

func TestScheduler_Persist(t *testing.T) {
	r := &mockRefresher{}
	logger := &testutil.MockLogger{}
	s := NewScheduler(schedulerConfig(), logger, r, testutil.NewMockArchive())

	require.NoError(t, s.Persist())
	assert.Equal(t, int32(1), r.persists.Load())
	assert.Equal(t, 0, logger.Count("error"))
}

func TestScheduler_PersistError(t *testing.T) {
	r := &mockRefresher{persistErr: errors.New("disk full")}
	logger := &testutil.MockLogger{}
	s := NewScheduler(schedulerConfig(), logger, r, testutil.NewMockArchive())

	assert.Error(t, s.Persist())
	assert.Equal(t, 1, logger.Count("error"))
}

func TestScheduler_Refresh(t *testing.T) {
	r := &mockRefresher{changed: true}
	logger := &testutil.MockLogger{}
	s := NewScheduler(schedulerConfig(), logger, r, testutil.NewMockArchive()).(*Scheduler)

	s.refresh()
	assert.Equal(t, int32(1), r.refreshes.Load())
	assert.Equal(t, 1, logger.Count("info"))

	r.changed = false
	s.refresh()
	assert.Equal(t, 1, logger.Count("info"))
}

func TestScheduler_InitRunsRefresh(t *testing.T) {
	r := &mockRefresher{}
	s := NewScheduler(schedulerConfig(), &testutil.MockLogger{}, r, testutil.NewMockArchive())

	s.Init()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return r.refreshes.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	s := NewScheduler(schedulerConfig(), &testutil.MockLogger{}, &mockRefresher{}, testutil.NewMockArchive())
	assert.NotPanics(t, s.Stop)
}
