package lib

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var memCache *cache.Cache

// GetCache returns the shared TTL cache used in front of catalog and
// unread-count reads.
func GetCache() *cache.Cache {
	if memCache != nil {
		return memCache
	}
	c := cache.New(1*time.Minute, 5*time.Minute)
	memCache = c
	return c
}

// NewCache Replace cache instance with custom implementation
func NewCache(c *cache.Cache) *cache.Cache {
	memCache = c
	return memCache
}
