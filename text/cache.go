package text

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/glyphmesh/internal/cache"
)

// Cache shares parsed fonts between pipelines.
// Fonts are parsed once per (path, parser) and handed out read-only.
//
// Cache is safe for concurrent use.
type Cache struct {
	fonts *cache.Cache[cacheKey, Font]
}

type cacheKey struct {
	path   string
	parser string
}

// NewCache creates a cache holding at most limit fonts.
// A limit of 0 means unlimited.
func NewCache(limit int) *Cache {
	return &Cache{fonts: cache.New[cacheKey, Font](limit)}
}

// LoadFile returns the cached font for path, loading it on first use.
// Load failures are not cached.
func (c *Cache) LoadFile(path string, opts ...LoadOption) (Font, error) {
	config := defaultLoadConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.parserName == "" {
		config.parserName = defaultParserName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	key := cacheKey{path: abs, parser: config.parserName}
	return c.fonts.GetOrLoad(key, func() (Font, error) {
		return LoadFile(abs, opts...)
	})
}

// Len returns the number of cached fonts.
func (c *Cache) Len() int { return c.fonts.Len() }

// Stats returns hit and miss counters of the cache.
func (c *Cache) Stats() (hits, misses uint64) {
	st := c.fonts.Stats()
	return st.Hits, st.Misses
}
