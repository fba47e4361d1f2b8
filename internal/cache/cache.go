// Package cache provides time-bounded memoization of catalog lookups.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a stored entry is served before it is treated as a
// miss.
const DefaultTTL = time.Hour

// entry is a stored payload with its storage time.
type entry struct {
	payload  any
	storedAt time.Time
}

// Cache is an in-memory TTL cache. Expired entries are dropped lazily at
// read time; there is no background sweep. The cache is guarded by a mutex
// so a client holding one can be shared across goroutines.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the default TTL.
func New() *Cache {
	return NewWithTTL(DefaultTTL)
}

// NewWithTTL creates a cache with the given TTL.
func NewWithTTL(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds a cache key from an operation name and a normalized
// (title, author) pair.
func Key(operation, title, author string) string {
	return fmt.Sprintf("%s:%s:%s", operation, strings.ToLower(title), strings.ToLower(author))
}

// Get returns the stored payload for key, or a miss if it is absent or its
// age exceeds the TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Put stores a payload under key, replacing any previous entry.
func (c *Cache) Put(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{payload: payload, storedAt: c.now()}
}

// Len returns the number of stored entries, including any not yet lazily
// expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
