package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		t.Parallel()
		var seen string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
			assert.Equal(t, seen, r.Header.Get(requestid.Header))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses a well-formed upstream ID", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "lb-7f3a_01", requestid.FromContext(r.Context()))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "lb-7f3a_01")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "lb-7f3a_01", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed IDs", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{
			"test request id",
			"test/request/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestid.Header, bad)
			rec := httptest.NewRecorder()
			requestid.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

			got := rec.Header().Get(requestid.Header)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, bad, got)
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()
	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
