package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdl/portal/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	probe := func(h http.Handler) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		return rec
	}

	t.Run("liveness", func(t *testing.T) {
		rec := probe(httpserver.HealthCheckHandler(nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("ready", func(t *testing.T) {
		ok := func(context.Context) error { return nil }
		rec := probe(httpserver.HealthCheckHandler(nil, ok, ok))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready stops at first failure", func(t *testing.T) {
		calls := 0
		failing := func(context.Context) error { calls++; return errors.New("circuit open") }
		rec := probe(httpserver.HealthCheckHandler(nil, failing, failing))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
		assert.Equal(t, 1, calls)
	})

	t.Run("uses request context", func(t *testing.T) {
		type key struct{}
		var got any
		check := func(ctx context.Context) error { got = ctx.Value(key{}); return nil }

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req = req.WithContext(context.WithValue(req.Context(), key{}, "probe"))
		httpserver.HealthCheckHandler(nil, check).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "probe", got)
	})
}
