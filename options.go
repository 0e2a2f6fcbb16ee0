package dit

import "net/http"

// ConnectOptions configures a Client.
type ConnectOptions struct {
	HTTPClient       *http.Client
	CacheDir         string
	CacheEntries     int
	CompressionLevel int
}

// Option is a functional option for configuring Connect.
type Option func(*ConnectOptions)

func defaultOptions() *ConnectOptions {
	return &ConnectOptions{
		CacheEntries:     defaultCacheEntries,
		CompressionLevel: 2,
	}
}

const defaultCacheEntries = 256

// WithHTTPClient overrides the HTTP client used to reach the daemon.
// The default client has no timeout so subscription streams stay open.
func WithHTTPClient(h *http.Client) Option {
	return func(o *ConnectOptions) {
		if h != nil {
			o.HTTPClient = h
		}
	}
}

// WithCache enables the local content cache rooted at dir. Only immutable
// /ipfs/ paths are cached; /ipns/ reads always go to the daemon.
func WithCache(dir string) Option {
	return func(o *ConnectOptions) { o.CacheDir = dir }
}

// WithCacheEntries bounds the in-memory tier of the content cache.
func WithCacheEntries(n int) Option {
	return func(o *ConnectOptions) {
		if n > 0 {
			o.CacheEntries = n
		}
	}
}

// WithCompressionLevel sets the zstd level for cached content (1..3).
// Zero or negative disables compression.
func WithCompressionLevel(level int) Option {
	return func(o *ConnectOptions) { o.CompressionLevel = level }
}
