package services

import (
	"context"
	"sync"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
)

// CacheIndex is the process-wide read-optimized mirror of the metadata
// store's fingerprint set. It is populated wholesale at construction and
// appended to on every successful registration; entries are never evicted.
// It is never the source of truth, only a fast path around the database.
type CacheIndex struct {
	mu   sync.RWMutex
	urls map[string]string
}

// NewCacheIndex loads the entire existing fingerprint -> location mapping
// from the metadata store into memory.
func NewCacheIndex(ctx context.Context, store outbound.MetadataStorePort, logger outbound.LoggerPort) (*CacheIndex, error) {
	urls, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = make(map[string]string)
	}
	logger.InfoWithFields("cache index initialized", map[string]interface{}{
		"entries": len(urls),
	})
	return &CacheIndex{urls: urls}, nil
}

// Lookup reports whether an artifact is already registered for fingerprint
// and returns its location when it is.
func (c *CacheIndex) Lookup(fingerprint string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.urls[fingerprint]
	return url, ok
}

// Insert records a registered artifact. The mirror is last-writer-wins; the
// durable store's unique index arbitrates real conflicts.
func (c *CacheIndex) Insert(fingerprint string, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls[fingerprint] = url
}

// Len returns the number of registered fingerprints.
func (c *CacheIndex) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
