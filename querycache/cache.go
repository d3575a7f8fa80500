// Package querycache is a process-local read cache over backend
// queries. Invalidation marks entries stale; the next read misses and
// refetches. Like the carts, it dies with the process.
package querycache

import (
	"strings"
	"sync"
	"time"
)

// Cache keys shared with every caller. Invalidating one forces the next
// read of that key to go back to the backend.
const (
	KeyTokenBalance       = "tokenBalance"
	KeyTransactionHistory = "transactionHistory"
	KeyCurrentUserProfile = "currentUserProfile"
	KeyProducts           = "products"
	KeyStripeConfigured   = "stripeConfigured"
)

type entry struct {
	value    any
	stale    bool
	storedAt time.Time
}

// Cache stores values per (key, scope). Scope is the user ID for
// user-bound reads and empty for global ones (product list, gateway
// status).
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Get returns the cached value unless it is absent or stale.
func (c *Cache) Get(key, scope string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[compose(key, scope)]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key, scope string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[compose(key, scope)] = &entry{value: value, storedAt: time.Now()}
}

// Invalidate marks every scope of the given keys stale. Unknown keys
// are a no-op, so callers can fire and forget.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		prefix := key + "\x00"
		for composite, e := range c.entries {
			if composite == key || strings.HasPrefix(composite, prefix) {
				e.stale = true
			}
		}
	}
}

// IsStale reports whether an entry exists and has been invalidated.
func (c *Cache) IsStale(key, scope string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[compose(key, scope)]
	return ok && e.stale
}

func compose(key, scope string) string {
	if scope == "" {
		return key
	}
	return key + "\x00" + scope
}
