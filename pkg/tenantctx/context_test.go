package tenantctx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantkit/tenantkit/pkg/tenantctx"
)

func TestWithContext(t *testing.T) {
	t.Parallel()

	t.Run("attaches tenant to context", func(t *testing.T) {
		t.Parallel()

		tc := tenantctx.Context{OrgID: 42, UserID: "u_1"}
		ctx := tenantctx.WithContext(context.Background(), tc)

		got, ok := tenantctx.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, tc, got)
	})

	t.Run("inner scope shadows outer and outer is untouched", func(t *testing.T) {
		t.Parallel()

		outer := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 1})
		inner := tenantctx.WithContext(outer, tenantctx.Context{OrgID: 2})

		got, ok := tenantctx.FromContext(inner)
		require.True(t, ok)
		assert.Equal(t, int64(2), got.OrgID)

		got, ok = tenantctx.FromContext(outer)
		require.True(t, ok)
		assert.Equal(t, int64(1), got.OrgID)
	})
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant inside scope", func(t *testing.T) {
		t.Parallel()

		ctx := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 7})

		tc, err := tenantctx.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), tc.OrgID)
	})

	t.Run("fails loudly outside any scope", func(t *testing.T) {
		t.Parallel()

		_, err := tenantctx.Current(context.Background())
		require.ErrorIs(t, err, tenantctx.ErrNoTenantContext)
		assert.Contains(t, err.Error(), "WithContext/RunWith")
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant inside scope", func(t *testing.T) {
		t.Parallel()

		ctx := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 3})
		assert.Equal(t, int64(3), tenantctx.MustFromContext(ctx).OrgID)
	})

	t.Run("panics outside any scope", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			tenantctx.MustFromContext(context.Background())
		})
	})
}

func TestHasContext(t *testing.T) {
	t.Parallel()

	assert.False(t, tenantctx.HasContext(context.Background()))
	ctx := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 1})
	assert.True(t, tenantctx.HasContext(ctx))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, tenantctx.Context{OrgID: 1}.Validate())
	assert.ErrorIs(t, tenantctx.Context{}.Validate(), tenantctx.ErrInvalidOrgID)
	assert.ErrorIs(t, tenantctx.Context{OrgID: -5}.Validate(), tenantctx.ErrInvalidOrgID)
}

func TestRunWith(t *testing.T) {
	t.Parallel()

	t.Run("fn sees the tenant, caller does not", func(t *testing.T) {
		t.Parallel()

		base := context.Background()
		err := tenantctx.RunWith(base, tenantctx.Context{OrgID: 11}, func(ctx context.Context) error {
			tc, err := tenantctx.Current(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(11), tc.OrgID)
			return nil
		})
		require.NoError(t, err)
		assert.False(t, tenantctx.HasContext(base))
	})

	t.Run("rejects invalid tenant before running fn", func(t *testing.T) {
		t.Parallel()

		ran := false
		err := tenantctx.RunWith(context.Background(), tenantctx.Context{}, func(ctx context.Context) error {
			ran = true
			return nil
		})
		require.ErrorIs(t, err, tenantctx.ErrInvalidOrgID)
		assert.False(t, ran)
	})

	t.Run("propagates fn error with scope intact", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("boom")
		err := tenantctx.RunWith(context.Background(), tenantctx.Context{OrgID: 1}, func(ctx context.Context) error {
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nested scopes restore outer on exit", func(t *testing.T) {
		t.Parallel()

		err := tenantctx.RunWith(context.Background(), tenantctx.Context{OrgID: 1}, func(outer context.Context) error {
			innerErr := tenantctx.RunWith(outer, tenantctx.Context{OrgID: 2}, func(inner context.Context) error {
				assert.Equal(t, int64(2), tenantctx.MustFromContext(inner).OrgID)
				return errors.New("inner failure")
			})
			require.Error(t, innerErr)

			// Outer scope is unaffected by the failed inner scope.
			assert.Equal(t, int64(1), tenantctx.MustFromContext(outer).OrgID)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := tenantctx.LoggerExtractor()

	t.Run("no attr outside scope", func(t *testing.T) {
		t.Parallel()

		_, ok := extract(context.Background())
		assert.False(t, ok)
	})

	t.Run("org attr inside scope", func(t *testing.T) {
		t.Parallel()

		ctx := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 9})
		attr, ok := extract(ctx)
		require.True(t, ok)
		assert.Equal(t, "org_id", attr.Key)
		assert.Equal(t, int64(9), attr.Value.Int64())
	})

	t.Run("grouped attrs when user is present", func(t *testing.T) {
		t.Parallel()

		ctx := tenantctx.WithContext(context.Background(), tenantctx.Context{OrgID: 9, UserID: "u_9"})
		attr, ok := extract(ctx)
		require.True(t, ok)
		assert.Equal(t, "tenant", attr.Key)
	})
}
