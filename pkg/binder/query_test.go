package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drdl/portal/pkg/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type searchRequest struct {
		Name  string  `query:"name"`
		Limit int     `query:"limit"`
		Exact *bool   `query:"exact"`
		Skip  string  `query:"-"`
		Page  uint    `query:"page,omitempty"`
		Score float64 `query:"score"`
	}

	t.Run("binds values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/search?name=John+Doe&limit=5&exact=true&Skip=x&page=2&score=1.5", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Equal(t, "John Doe", got.Name)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Exact)
		assert.True(t, *got.Exact)
		assert.Empty(t, got.Skip)
		assert.Equal(t, uint(2), got.Page)
		assert.Equal(t, 1.5, got.Score)
	})

	t.Run("escaped values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/search?name=%C3%81nanya%20%26%20co", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Equal(t, "Ánanya & co", got.Name)
	})

	t.Run("missing values keep zero", func(t *testing.T) {
		t.Parallel()
		var got searchRequest
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/search", nil), &got))
		assert.Empty(t, got.Name)
		assert.Nil(t, got.Exact)
	})

	t.Run("works on POST", func(t *testing.T) {
		t.Parallel()
		var got searchRequest
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodPost, "/search?name=Jane", nil), &got))
		assert.Equal(t, "Jane", got.Name)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var got searchRequest
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/search?limit=many", nil), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})

	t.Run("malformed query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.URL.RawQuery = "name=%zz"

		var got searchRequest
		assert.ErrorIs(t, binder.Query()(req, &got), binder.ErrInvalidQuery)
	})
}
