package store

import "sync"

// memCache is a bounded in-memory map fronting the disk tier.
// TODO: evict least-recently-used entries instead of an arbitrary one.
type memCache struct {
	maxEntries int
	items      map[string][]byte
	mu         sync.RWMutex
}

func newMemCache(maxEntries int) *memCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &memCache{
		maxEntries: maxEntries,
		items:      make(map[string][]byte),
	}
}

func (c *memCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.items[key]
	return data, ok
}

func (c *memCache) add(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok && len(c.items) >= c.maxEntries {
		for k := range c.items {
			delete(c.items, k)
			break
		}
	}
	c.items[key] = data
}

func (c *memCache) remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}
