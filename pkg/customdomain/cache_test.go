package customdomain_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantkit/tenantkit/pkg/customdomain"
)

func TestInMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCache()
		defer c.Close()

		res := &customdomain.Resolution{OrgID: 1, Status: customdomain.StatusActive}
		c.Set(ctx, "portal.acme.com", res, time.Minute)

		got, ok := c.Get(ctx, "portal.acme.com")
		require.True(t, ok)
		assert.Equal(t, res, got)
	})

	t.Run("miss on absent key", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCache()
		defer c.Close()

		_, ok := c.Get(ctx, "nope.example.com")
		assert.False(t, ok)
	})

	t.Run("delete takes effect immediately", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCache()
		defer c.Close()

		c.Set(ctx, "portal.acme.com", &customdomain.Resolution{OrgID: 1}, time.Minute)
		c.Delete(ctx, "portal.acme.com")

		_, ok := c.Get(ctx, "portal.acme.com")
		assert.False(t, ok)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCache()
		defer c.Close()

		c.Set(ctx, "portal.acme.com", &customdomain.Resolution{OrgID: 1}, 5*time.Millisecond)
		time.Sleep(10 * time.Millisecond)

		_, ok := c.Get(ctx, "portal.acme.com")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCacheWithSize(2)
		defer c.Close()

		c.Set(ctx, "a.com", &customdomain.Resolution{OrgID: 1}, time.Minute)
		c.Set(ctx, "b.com", &customdomain.Resolution{OrgID: 2}, time.Minute)

		// Touch a.com so b.com becomes the eviction candidate.
		_, ok := c.Get(ctx, "a.com")
		require.True(t, ok)

		c.Set(ctx, "c.com", &customdomain.Resolution{OrgID: 3}, time.Minute)

		_, ok = c.Get(ctx, "b.com")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "a.com")
		assert.True(t, ok)
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCacheWithSize(64)
		defer c.Close()

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				host := fmt.Sprintf("host%d.com", n%8)
				for range 200 {
					c.Set(ctx, host, &customdomain.Resolution{OrgID: int64(n + 1)}, time.Minute)
					c.Get(ctx, host)
					c.Delete(ctx, host)
				}
			}(i)
		}
		wg.Wait()
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		c := customdomain.NewInMemoryCache()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
	})
}
