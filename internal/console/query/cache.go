// Package query implements the cached read path of the user directory:
// a key-indexed cache with explicit stale marking, and query front-ends
// that re-fetch lazily on the next access after invalidation.
package query

import "sync"

// Kinds of cache keys. One family per remote query.
const (
	KindUsers = "users" // paginated directory listing, Param = page
	KindUser  = "user"  // single record, Param = user id
)

// Key identifies one cached query result.
type Key struct {
	Kind  string
	Param int
}

type entry struct {
	value any
	stale bool
}

// Cache is a mutex-guarded map of query results. Entries are never evicted,
// only marked stale; a stale entry behaves like a miss on lookup and is
// replaced by the next successful fetch.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]entry)}
}

// Lookup returns the cached value for k, or ok=false when the entry is
// missing or stale.
func (c *Cache) Lookup(k Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[k]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

// Store saves a fresh value for k, replacing any previous entry.
func (c *Cache) Store(k Key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = entry{value: v}
}

// Invalidate marks the single entry for k stale. Missing entries are ignored.
func (c *Cache) Invalidate(k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[k]; ok {
		e.stale = true
		c.entries[k] = e
	}
}

// InvalidateKind marks every entry of the given kind stale. This is the
// "users family" invalidation used after mutations.
func (c *Cache) InvalidateKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if k.Kind == kind {
			e.stale = true
			c.entries[k] = e
		}
	}
}
