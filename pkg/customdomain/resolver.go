package customdomain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultCacheTTL bounds how long a resolution is served without re-checking
// the provider. Explicit Invalidate calls purge entries immediately; the TTL
// only caps the lifetime of entries whose mapping never changes.
const DefaultCacheTTL = 5 * time.Minute

// Resolver maps hostnames to org resolutions with caching.
type Resolver struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache sets a custom cache implementation (e.g. NewRedisCache).
func WithCache(cache Cache) ResolverOption {
	return func(r *Resolver) { r.cache = cache }
}

// WithCacheTTL sets the cache entry lifetime.
func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) { r.ttl = ttl }
}

// NewResolver creates a resolver over provider with an in-memory cache by
// default.
func NewResolver(provider Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		provider: provider,
		cache:    NewInMemoryCache(),
		ttl:      DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a hostname to its org resolution. Returns (nil, nil) for
// unmapped hostnames: not a custom domain, fall back to primary-domain
// behavior. Provider failures other than not-found propagate; they must not
// silently degrade into "not a custom domain".
func (r *Resolver) Resolve(ctx context.Context, hostname string) (*Resolution, error) {
	host := NormalizeHost(hostname)
	if host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHostname, hostname)
	}

	if cached, ok := r.cache.Get(ctx, host); ok {
		return cached, nil
	}

	res, err := r.provider.LookupHost(ctx, host)
	if err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("customdomain: resolve %s: %w", host, err)
	}

	r.cache.Set(ctx, host, res, r.ttl)
	return res, nil
}

// Invalidate purges the cache entry for a hostname. Call it synchronously
// whenever a domain mapping is created, updated, or deleted.
func (r *Resolver) Invalidate(ctx context.Context, hostname string) {
	r.cache.Delete(ctx, NormalizeHost(hostname))
}

// Close releases the resolver's cache resources.
func (r *Resolver) Close() error {
	return r.cache.Close()
}
