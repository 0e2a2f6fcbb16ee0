package dit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/SionoiS/dit/internal/rpc"
	"github.com/SionoiS/dit/internal/store"
)

// Client is a handle to the content-addressing daemon. Construct it once at
// application startup and pass it explicitly; there is no package-level
// singleton.
type Client struct {
	backend Backend
	cache   *store.Cache

	mu      sync.Mutex
	subs    map[string]*subscription
	closed  bool
	readers conc.WaitGroup
}

// Connect builds a Client for the daemon API at apiURL. Construction is
// synchronous and performs no health check; an unreachable daemon surfaces
// on first use.
func Connect(apiURL string, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	rc, err := rpc.NewClient(apiURL, options.HTTPClient)
	if err != nil {
		return nil, err
	}

	c := &Client{
		backend: &httpBackend{rpc: rc},
		subs:    make(map[string]*subscription),
	}

	if options.CacheDir != "" {
		cache, err := store.Open(options.CacheDir, options.CacheEntries, options.CompressionLevel)
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}

	return c, nil
}

// NewWithBackend builds a Client on a caller-provided backend (e.g. a fake
// in tests).
func NewWithBackend(b Backend) *Client {
	return &Client{
		backend: b,
		subs:    make(map[string]*subscription),
	}
}

// Cat reads the full content at path, draining the daemon's chunk stream
// into a single buffer. On a mid-stream error the partial bytes are
// discarded and only the error is returned.
func (c *Client) Cat(ctx context.Context, path string) ([]byte, error) {
	if c.cache != nil && cacheable(path) {
		if data, ok := c.cache.Get(path); ok {
			return data, nil
		}
	}

	var buf bytes.Buffer
	for chunk, err := range c.backend.Cat(ctx, path) {
		if err != nil {
			return nil, err
		}
		buf.Write(chunk)
	}
	data := buf.Bytes()

	if c.cache != nil && cacheable(path) {
		c.cache.Add(path, data)
	}
	return data, nil
}

// cacheable reports whether content at path is immutable. IPNS names can
// repoint between reads, so they are never cached.
func cacheable(path string) bool {
	return path != "" && !strings.HasPrefix(path, "/ipns/")
}

// Resolve looks up name and returns the first resolved path, abandoning the
// rest of the stream. Best-effort: the first result is not guaranteed to be
// authoritative. An empty stream yields ErrNotResolved.
func (c *Client) Resolve(ctx context.Context, name string) (string, error) {
	for path, err := range c.backend.NameResolve(ctx, name) {
		if err != nil {
			return "", err
		}
		return path, nil
	}
	return "", ErrNotResolved
}

// DAGGet fetches the node at id restricted to path and returns only its
// decoded value, discarding remainder-path metadata.
func (c *Client) DAGGet(ctx context.Context, id, path string) (json.RawMessage, error) {
	node, err := c.backend.DAGGet(ctx, id, path)
	if err != nil {
		return nil, err
	}
	return node.Value, nil
}

// Publish sends data on topic. A nil return means the daemon accepted the
// publish request, not that any peer received it. Publishing is not
// idempotent; calling twice sends twice.
func (c *Client) Publish(ctx context.Context, topic string, data []byte) error {
	return c.backend.Publish(ctx, topic, data)
}
