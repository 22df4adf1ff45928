package theme

import (
	"fmt"
	"sync"
)

// Cache names reported to a CacheObserver.
const (
	CacheColor         = "color"
	CacheFont          = "font"
	CacheView          = "view"
	CacheNavigationBar = "navigation_bar"
	CacheTextLabel     = "text_label"
)

// CacheObserver receives cache activity for a theme.
type CacheObserver interface {
	CacheHit(theme, cache string)
	CacheMiss(theme, cache string)
	CacheCleared(theme, cache string, entries int)
}

// valueCache memoizes derived values by lookup key. Entries are never
// evicted; a theme's documents are immutable so a stored value stays valid
// until the cache is cleared.
type valueCache[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]V
}

func newValueCache[V any](name string) *valueCache[V] {
	return &valueCache[V]{name: name, entries: make(map[string]V)}
}

func (c *valueCache[V]) get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]
	return value, ok
}

// store keeps the first value written for a key and returns the stored value.
func (c *valueCache[V]) store(key string, value V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = value
	return value
}

// clear drops every entry and reports how many were removed.
func (c *valueCache[V]) clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]V)
	return n
}

func (c *valueCache[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// adjustedKey is the cache key for size-adjustable lookups.
func adjustedKey(key string, sizeAdjustment float64) string {
	return fmt.Sprintf("%s_%.2f", key, sizeAdjustment)
}

// cached returns the value under cacheKey, building and storing it on a miss.
// Build errors are returned without caching anything.
func cached[V any](t *Theme, c *valueCache[V], cacheKey string, build func() (V, error)) (V, error) {
	if value, ok := c.get(cacheKey); ok {
		t.observer.CacheHit(t.name, c.name)
		return value, nil
	}
	t.observer.CacheMiss(t.name, c.name)

	value, err := build()
	if err != nil {
		var zero V
		return zero, err
	}
	return c.store(cacheKey, value), nil
}

type noopObserver struct{}

func (noopObserver) CacheHit(string, string)          {}
func (noopObserver) CacheMiss(string, string)         {}
func (noopObserver) CacheCleared(string, string, int) {}
