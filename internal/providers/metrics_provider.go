package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gritd/internal/structures"
	"net/http"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncPersistenceErrors()
	SetLogsTotal(count int)
	SetCumulativeScore(score int)
	AddRewardsCompleted(count int)
	Handler() http.Handler
}

type MetricsProvider struct {
	registry            *prometheus.Registry
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	persistenceErrors   prometheus.Counter
	logsTotal           prometheus.Gauge
	cumulativeScore     prometheus.Gauge
	rewardsCompleted    prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceErrors() {
	m.persistenceErrors.Inc()
}

func (m *MetricsProvider) SetLogsTotal(count int) {
	m.logsTotal.Set(float64(count))
}

func (m *MetricsProvider) SetCumulativeScore(score int) {
	m.cumulativeScore.Set(float64(score))
}

func (m *MetricsProvider) AddRewardsCompleted(count int) {
	m.rewardsCompleted.Add(float64(count))
}

func (m *MetricsProvider) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// NewMetricsProvider registers collectors on a private registry so that
// several providers can coexist in one process.
func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grit_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grit_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "grit_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "grit_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "grit_persistence_duration_seconds",
			Help:    "Duration of snapshot writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		persistenceErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "grit_persistence_errors_total",
			Help: "Total number of failed snapshot writes",
		}),

		logsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "grit_logs_total",
			Help: "Number of grit logs in the store",
		}),

		cumulativeScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "grit_cumulative_score",
			Help: "Sum of endurance scores over all logs",
		}),

		rewardsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "grit_rewards_completed_total",
			Help: "Rewards completed automatically by score",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncPersistenceErrors()                            {}
func (n *noopMetrics) SetLogsTotal(_ int)                               {}
func (n *noopMetrics) SetCumulativeScore(_ int)                         {}
func (n *noopMetrics) AddRewardsCompleted(_ int)                        {}
func (n *noopMetrics) Handler() http.Handler                            { return http.NotFoundHandler() }
