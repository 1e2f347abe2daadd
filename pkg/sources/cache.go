package sources

import (
	"sync"
	"time"
)

// Default cache policy for repository validation results.
const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultCacheCapacity = 256
)

// ValidationCache is a time-bounded cache of validation results keyed by
// repository URL. Entries expire purely by age: a stale hit is served
// unchanged until its expiry passes. The clock is injected so tests control
// expiry, and the cache is owned by the caller's lifecycle rather than being
// a package-level singleton.
type ValidationCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

type cacheEntry struct {
	result    ValidationResult
	expiresAt time.Time
}

// NewValidationCache creates a cache with the given expiry window and
// capacity. A nil clock defaults to time.Now; zero ttl and capacity default
// to the package constants.
func NewValidationCache(ttl time.Duration, capacity int, clock func() time.Time) *ValidationCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if clock == nil {
		clock = time.Now
	}
	return &ValidationCache{
		entries:  make(map[string]cacheEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      clock,
	}
}

// Get returns the cached result for a key if present and not expired.
func (c *ValidationCache) Get(key string) (ValidationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return ValidationResult{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return ValidationResult{}, false
	}
	return entry.result, true
}

// Put stores a result under a key. When the cache is full, expired entries
// are evicted first; if none are expired the oldest-expiring entry goes.
func (c *ValidationCache) Put(key string, result ValidationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictLocked()
	}

	c.entries[key] = cacheEntry{
		result:    result,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of entries currently held, including expired ones
// that have not yet been evicted.
func (c *ValidationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictLocked removes expired entries, or the soonest-expiring entry when
// nothing has expired yet. Callers must hold the mutex.
func (c *ValidationCache) evictLocked() {
	now := c.now()
	evicted := false
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			evicted = true
		}
	}
	if evicted {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
