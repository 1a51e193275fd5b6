package cache

import (
	"time"

	"github.com/claimscope/claimscope/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds verdicts in process memory with TTL eviction.
// Claims are stored as values, not serialized; entries die with the
// process, which is the only lifetime verdicts are allowed to have.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a verdict cache with the given default TTL
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the cached claim for a key
func (c *MemoryCache) Get(key string) (model.Claim, bool) {
	if val, found := c.cache.Get(key); found {
		if claim, ok := val.(model.Claim); ok {
			return claim, true
		}
	}
	return model.Claim{}, false
}

// Set stores a claim under the key with the given TTL
func (c *MemoryCache) Set(key string, claim model.Claim, ttl time.Duration) {
	c.cache.Set(key, claim, ttl)
}

// Delete removes a cached claim
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all cached claims
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
