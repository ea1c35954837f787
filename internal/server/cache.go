package server

import (
	"sync"
	"time"

	"github.com/mj1618/a11y-cli/internal/platform"
	"github.com/mj1618/a11y-cli/model"
)

// cacheKey identifies one element dump read.
type cacheKey struct {
	Path         string
	ElementsPath string
	Types        string
}

// cacheEntry holds a cached element list with its timestamp.
type cacheEntry struct {
	elements  []model.Element
	timestamp time.Time
}

// ElementCache provides a TTL-based cache for element dumps read from disk.
type ElementCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewElementCache creates a new cache. A ttl of 0 disables caching.
func NewElementCache(ttl time.Duration) *ElementCache {
	return &ElementCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// ReadElements returns cached elements if within TTL, otherwise reads fresh.
// Region reads are never cached.
func (c *ElementCache) ReadElements(reader platform.Reader, opts platform.ReadOptions) ([]model.Element, error) {
	if c.ttl == 0 || opts.Region != nil || opts.Path == "-" {
		return reader.ReadElements(opts)
	}

	key := cacheKey{Path: opts.Path, ElementsPath: opts.ElementsPath}
	for _, t := range opts.Types {
		key.Types += string(t) + ","
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		elements := entry.elements
		c.mu.Unlock()
		return elements, nil
	}
	c.mu.Unlock()

	elements, err := reader.ReadElements(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{elements: elements, timestamp: c.now()}
	c.mu.Unlock()

	return elements, nil
}

// InvalidatePath removes all cache entries for path.
func (c *ElementCache) InvalidatePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Path == path {
			delete(c.entries, k)
		}
	}
}
