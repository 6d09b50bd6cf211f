package dedup

import (
	"sync"
	"time"
)

// DefaultWindow is the retention window for the receive-time cache.
const DefaultWindow = 30 * time.Minute

// CacheStats reports cache activity for diagnostics.
type CacheStats struct {
	Hits uint64
	Size int
}

// Cache is the receive-time duplicate cache. Several messages can arrive
// in a burst, so the check and the insert happen atomically under one
// lock. Stale entries are evicted lazily on every lookup; there is no
// background timer.
type Cache struct {
	entries map[string]time.Time
	window  time.Duration
	hits    uint64
	mu      sync.Mutex
}

// NewCache creates a receive-time cache with the given retention window.
// A non-positive window falls back to DefaultWindow.
func NewCache(window time.Duration) *Cache {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Cache{
		entries: make(map[string]time.Time),
		window:  window,
	}
}

// CheckAndRecord reports whether the fingerprint was already seen within
// the retention window. When it was not, the fingerprint is recorded with
// the given observation time.
func (c *Cache) CheckAndRecord(fingerprint string, at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictLocked(at)

	if first, ok := c.entries[fingerprint]; ok && at.Sub(first) <= c.window {
		c.hits++
		return true
	}

	c.entries[fingerprint] = at
	return false
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Size: len(c.entries)}
}

func (c *Cache) evictLocked(now time.Time) {
	for fp, first := range c.entries {
		if now.Sub(first) > c.window {
			delete(c.entries, fp)
		}
	}
}
