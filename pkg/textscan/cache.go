package textscan

import (
	"container/list"
	"sync"

	"github.com/unitcalc/unitcalc/pkg/unitexpr"
)

// Cache memoizes scanned structures with LRU eviction. Scanning never
// mutates the factory, so cached structures stay valid for the factory's
// lifetime.
type Cache struct {
	factory *unitexpr.Factory

	mu      sync.Mutex
	entries map[string]*cacheEntry
	lruList *list.List // Front = most recently used
	limit   int
	hits    int64
	misses  int64
}

type cacheEntry struct {
	structure *Structure
	key       string
	element   *list.Element
}

// CacheStats holds cache performance counters.
type CacheStats struct {
	Size   int
	Limit  int
	Hits   int64
	Misses int64
}

// NewCache creates a cache over the given factory. A limit <= 0 leaves the
// cache unbounded.
func NewCache(factory *unitexpr.Factory, limit int) *Cache {
	return &Cache{
		factory: factory,
		entries: make(map[string]*cacheEntry),
		lruList: list.New(),
		limit:   limit,
	}
}

// Scan returns the cached structure for text, scanning it on a miss.
func (c *Cache) Scan(text string) (*Structure, error) {
	c.mu.Lock()
	if entry, ok := c.entries[text]; ok {
		c.lruList.MoveToFront(entry.element)
		c.hits++
		c.mu.Unlock()
		return entry.structure, nil
	}
	c.mu.Unlock()

	structure, err := Scan(text, c.factory)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[text]; ok {
		c.lruList.MoveToFront(entry.element)
		return entry.structure, nil
	}

	c.misses++
	if c.limit > 0 && len(c.entries) >= c.limit {
		c.evictLRU()
	}

	entry := &cacheEntry{structure: structure, key: text}
	entry.element = c.lruList.PushFront(entry)
	c.entries[text] = entry
	return structure, nil
}

// evictLRU removes the least recently used entry. Must be called with the
// lock held.
func (c *Cache) evictLRU() {
	oldest := c.lruList.Back()
	if oldest == nil {
		return
	}
	entry := oldest.Value.(*cacheEntry)
	c.lruList.Remove(oldest)
	delete(c.entries, entry.key)
}

// Clear removes all cached structures.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.lruList = list.New()
	c.hits = 0
	c.misses = 0
}

// Size returns the number of cached structures.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache performance counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:   len(c.entries),
		Limit:  c.limit,
		Hits:   c.hits,
		Misses: c.misses,
	}
}
