package providers

import "gritd/internal/structures"

// countingCache reports every lookup as a hit or miss to prometheus.
type countingCache struct {
	CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	val, ok := c.CacheProviderInterface.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

// NewInstrumentedCacheProvider wraps the response cache with hit and miss
// counters. With the cache disabled every lookup would be a miss, so the
// noop cache is returned as is.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	cache := NewCacheProvider(conf, logger)
	if _, ok := cache.(*noopCache); ok {
		return cache
	}
	return &countingCache{CacheProviderInterface: cache, metrics: metrics}
}
