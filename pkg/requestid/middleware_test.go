package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantkit/tenantkit/pkg/requestid"
)

func serveWithID(t *testing.T, header string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID when none supplied", func(t *testing.T) {
		t.Parallel()

		seen, rec := serveWithID(t, "")
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses a valid client ID", func(t *testing.T) {
		t.Parallel()

		for _, valid := range []string{
			"abc123",
			"req-42_x",
			"550e8400-e29b-41d4-a716-446655440000",
		} {
			seen, rec := serveWithID(t, valid)
			assert.Equal(t, valid, seen)
			assert.Equal(t, valid, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("replaces malformed client IDs", func(t *testing.T) {
		t.Parallel()

		for _, invalid := range []string{
			"spaces are out",
			"slash/slash",
			"<script>alert(1)</script>",
			"too-long-" + strings.Repeat("a", 128),
		} {
			seen, rec := serveWithID(t, invalid)
			assert.NotEmpty(t, seen)
			assert.NotEqual(t, invalid, seen)
			assert.NotEqual(t, invalid, rec.Header().Get(requestid.Header))
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
