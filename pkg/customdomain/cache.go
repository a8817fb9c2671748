package customdomain

import (
	"context"
	"sync"
	"time"
)

// Cache stores resolutions keyed by exact hostname.
type Cache interface {
	// Get retrieves a cached resolution.
	Get(ctx context.Context, hostname string) (*Resolution, bool)

	// Set stores a resolution with the given TTL.
	Set(ctx context.Context, hostname string, res *Resolution, ttl time.Duration)

	// Delete purges the entry for a hostname. Must take effect before it
	// returns; the resolver's invalidation contract is synchronous.
	Delete(ctx context.Context, hostname string)

	// Close releases any resources held by the cache.
	Close() error
}

// DefaultCacheSize is the default maximum number of cached hostnames.
const DefaultCacheSize = 1000

// inMemoryCache is the default cache: TTL expiry, LRU eviction, periodic
// cleanup.
type inMemoryCache struct {
	mu      sync.Mutex
	items   map[string]cacheItem
	lru     []string
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

type cacheItem struct {
	res       *Resolution
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with the default size limit.
func NewInMemoryCache() Cache {
	return NewInMemoryCacheWithSize(DefaultCacheSize)
}

// NewInMemoryCacheWithSize creates an in-memory cache bounded to maxSize
// hostnames.
func NewInMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	c := &inMemoryCache{
		items:   make(map[string]cacheItem),
		lru:     make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.cleanup()
	return c
}

func (c *inMemoryCache) Get(ctx context.Context, hostname string) (*Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[hostname]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		delete(c.items, hostname)
		c.removeLRU(hostname)
		return nil, false
	}
	c.touchLRU(hostname)
	return item.res, true
}

func (c *inMemoryCache) Set(ctx context.Context, hostname string, res *Resolution, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[hostname]; !exists && len(c.items) >= c.maxSize {
		if len(c.lru) > 0 {
			evict := c.lru[0]
			delete(c.items, evict)
			c.lru = c.lru[1:]
		}
	}
	c.items[hostname] = cacheItem{res: res, expiresAt: time.Now().Add(ttl)}
	c.touchLRU(hostname)
}

func (c *inMemoryCache) Delete(ctx context.Context, hostname string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, hostname)
	c.removeLRU(hostname)
}

func (c *inMemoryCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *inMemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for hostname, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, hostname)
			c.removeLRU(hostname)
		}
	}
}

func (c *inMemoryCache) touchLRU(hostname string) {
	c.removeLRU(hostname)
	c.lru = append(c.lru, hostname)
}

func (c *inMemoryCache) removeLRU(hostname string) {
	for i, k := range c.lru {
		if k == hostname {
			c.lru = append(c.lru[:i], c.lru[i+1:]...)
			return
		}
	}
}

func (c *inMemoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

// noOpCache disables caching; every resolution hits the provider.
type noOpCache struct{}

// NewNoOpCache creates a cache that never stores anything.
func NewNoOpCache() Cache { return noOpCache{} }

func (noOpCache) Get(ctx context.Context, hostname string) (*Resolution, bool) { return nil, false }
func (noOpCache) Set(ctx context.Context, hostname string, res *Resolution, ttl time.Duration) {
}
func (noOpCache) Delete(ctx context.Context, hostname string) {}
func (noOpCache) Close() error                                { return nil }
