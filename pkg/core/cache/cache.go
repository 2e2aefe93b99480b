// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     cache
// Description: Bounded in-memory cache with TTL and hit/miss statistics
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry represents a cached rendering with expiration
type Entry struct {
	Value      string
	Expiration time.Time
	added      uint64
}

// IsExpired checks if the entry has expired at now
func (e *Entry) IsExpired(now time.Time) bool {
	if e.Expiration.IsZero() {
		return false // Never expires
	}
	return now.After(e.Expiration)
}

// Cache is a thread-safe in-memory cache with TTL support. When full, the
// entry stored first is evicted.
type Cache struct {
	mu       sync.Mutex
	items    map[string]*Entry
	maxItems int
	ttl      time.Duration
	seq      uint64
	now      func() time.Time

	// Metrics
	hits      int64
	misses    int64
	evictions int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration // zero keeps entries until evicted
}

// Stats is a snapshot of cache metrics
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	HitRate   float64 // percent
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1024,
		TTL:      10 * time.Minute,
	}
}

// New creates a new cache instance
func New(cfg Config) *Cache {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}

	return &Cache{
		items:    make(map[string]*Entry),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// Key derives a fixed-size cache key from its parts
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16]) // Use first 16 bytes
}

// Get retrieves a value from the cache
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return "", false
	}

	if entry.IsExpired(c.now()) {
		delete(c.items, key)
		c.misses++
		return "", false
	}

	c.hits++
	return entry.Value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.removeExpired()
		if len(c.items) >= c.maxItems {
			c.evictOldest()
		}
	}

	var exp time.Time
	if c.ttl > 0 {
		exp = c.now().Add(c.ttl)
	}

	c.seq++
	c.items[key] = &Entry{
		Value:      value,
		Expiration: exp,
		added:      c.seq,
	}
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// GetOrSet returns the cached value for key, or computes and stores it.
// Errors are not cached. The bool reports whether the value was cached.
func (c *Cache) GetOrSet(key string, fn func() (string, error)) (string, bool, error) {
	if val, ok := c.Get(key); ok {
		return val, true, nil
	}

	val, err := fn()
	if err != nil {
		return "", false, err
	}

	c.Set(key, val)
	return val, false, nil
}

// evictOldest removes the entry stored first (must be called with lock held)
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest uint64

	for key, entry := range c.items {
		if oldestKey == "" || entry.added < oldest {
			oldestKey = key
			oldest = entry.added
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
		c.evictions++
	}
}

// removeExpired drops all expired entries (must be called with lock held)
func (c *Cache) removeExpired() {
	now := c.now()
	for key, entry := range c.items {
		if entry.IsExpired(now) {
			delete(c.items, key)
		}
	}
}
