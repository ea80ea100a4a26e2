package providers

import (
	"github.com/coocood/freecache"
	"gritd/internal/structures"
	"time"
	"unsafe"
)

const defaultCacheTTL = time.Minute

// CacheProviderInterface holds encoded stats responses. Callers scope keys to
// a store revision, so entries for an older revision are simply never read
// again and age out through the TTL.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Purge()
	Stats() CacheStats
}

type CacheStats struct {
	Enabled   bool    `json:"enabled"`
	Entries   int64   `json:"entries"`
	HitRate   float64 `json:"hitRate"`
	Evictions int64   `json:"evictions"`
	Expired   int64   `json:"expired"`
}

type ResponseCache struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	ttl := conf.Cache.TTL
	if ttl < time.Second {
		ttl = defaultCacheTTL
	}
	logger.Infof(TypeApp, "Response cache enabled: %dMB, ttl %s", conf.Cache.Size, ttl)

	return &ResponseCache{
		cache: freecache.NewCache(conf.Cache.Size << 20),
		ttl:   int(ttl / time.Second),
	}
}

// keyBytes aliases the key's memory. freecache hashes and copies the key, so
// the slice is never retained or written.
func keyBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(keyBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set skips values freecache rejects, those over 1/1024 of the cache size.
func (c *ResponseCache) Set(key string, value []byte) {
	_ = c.cache.Set(keyBytes(key), value, c.ttl)
}

func (c *ResponseCache) Purge() {
	c.cache.Clear()
}

func (c *ResponseCache) Stats() CacheStats {
	return CacheStats{
		Enabled:   true,
		Entries:   c.cache.EntryCount(),
		HitRate:   c.cache.HitRate(),
		Evictions: c.cache.EvacuateCount(),
		Expired:   c.cache.ExpiredCount(),
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Purge()                      {}
func (n *noopCache) Stats() CacheStats           { return CacheStats{} }
