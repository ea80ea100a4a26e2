package providers

import (
	"gritd/internal/structures"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("GET /logs", 200)
	m.ObserveRequestDuration("GET /logs", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncPersistenceErrors()
	m.SetLogsTotal(10)
	m.SetCumulativeScore(510)
	m.AddRewardsCompleted(1)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")

	// A second provider has its own registry and must not panic on
	// duplicate registration.
	assert.NotPanics(t, func() { NewMetricsProvider(conf) })
}

func TestMetricsProvider_Values(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncRequestsTotal("GET /logs", 200)
	m.IncRequestsTotal("GET /logs", 204)
	m.IncRequestsTotal("GET /logs", 404)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncCacheMisses()
	m.IncPersistenceErrors()
	m.SetLogsTotal(2)
	m.SetCumulativeScore(510)
	m.AddRewardsCompleted(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET /logs", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET /logs", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistenceErrors))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logsTotal))
	assert.Equal(t, 510.0, testutil.ToFloat64(m.cumulativeScore))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rewardsCompleted))
}

func TestMetricsProvider_Handler(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	m.SetCumulativeScore(42)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "grit_cumulative_score 42")
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{422, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
