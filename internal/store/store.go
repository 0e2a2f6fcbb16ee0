// Package store is a local cache for immutable content fetched from the
// daemon. Content-addressed paths always name the same bytes, so a hit
// never needs revalidation.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SionoiS/dit/internal/compression"
)

// Cache stores fetched content keyed by request path.
//
// Layout:
//
//	dir/content/
//	  ab/abcd1234...  (sha-256 of the path, zstd-compressed content)
//
// A bounded in-memory tier fronts the disk tier.
type Cache struct {
	dir        string
	mem        *memCache
	compressor *compression.Compressor
}

// Open creates or opens a cache rooted at dir. entries bounds the memory
// tier; level is the zstd level for the disk tier (<= 0 disables).
func Open(dir string, entries int, level int) (*Cache, error) {
	contentDir := filepath.Join(dir, "content")
	if err := os.MkdirAll(contentDir, 0755); err != nil {
		return nil, fmt.Errorf("store: create cache dir: %w", err)
	}

	compressor, err := compression.New(level)
	if err != nil {
		return nil, fmt.Errorf("store: init compressor: %w", err)
	}

	return &Cache{
		dir:        contentDir,
		mem:        newMemCache(entries),
		compressor: compressor,
	}, nil
}

// Get returns the cached content for path, checking memory before disk.
func (c *Cache) Get(path string) ([]byte, bool) {
	key := cacheKey(path)

	if data, ok := c.mem.get(key); ok {
		return data, true
	}

	compressed, err := os.ReadFile(c.objectPath(key))
	if err != nil {
		return nil, false
	}
	data := c.compressor.Decompress(compressed)
	c.mem.add(key, data)
	return data, true
}

// Add stores content for path in both tiers. Disk write failures are
// returned but leave the memory tier populated; the next Get still hits.
func (c *Cache) Add(path string, data []byte) error {
	key := cacheKey(path)
	c.mem.add(key, data)

	objectPath := c.objectPath(key)
	if err := os.MkdirAll(filepath.Dir(objectPath), 0755); err != nil {
		return fmt.Errorf("store: create object dir: %w", err)
	}
	if err := os.WriteFile(objectPath, c.compressor.Compress(data), 0644); err != nil {
		return fmt.Errorf("store: write object: %w", err)
	}
	return nil
}

// Remove drops the content for path from both tiers.
func (c *Cache) Remove(path string) error {
	key := cacheKey(path)
	c.mem.remove(key)
	if err := os.Remove(c.objectPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: remove object: %w", err)
	}
	return nil
}

// Close releases the compressor.
func (c *Cache) Close() error {
	return c.compressor.Close()
}

func (c *Cache) objectPath(key string) string {
	return filepath.Join(c.dir, key[:2], key)
}

func cacheKey(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:])
}
