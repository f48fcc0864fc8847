package resource_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

func TestHTTPFetcher(t *testing.T) {
	var lastCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastCacheControl = r.Header.Get("Cache-Control")
		switch r.URL.Path {
		case "/i18n/de.json":
			_, _ = w.Write([]byte(`{"nav":{"home":"Start"}}`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := resource.NewHTTPFetcher(srv.URL, resource.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("fetches with cache bypass", func(t *testing.T) {
		body, err := f.Fetch(ctx, "/i18n/de.json", resource.CacheBypass)
		require.NoError(t, err)
		assert.JSONEq(t, `{"nav":{"home":"Start"}}`, string(body))
		assert.Equal(t, "no-cache", lastCacheControl)
	})

	t.Run("default mode sends no cache headers", func(t *testing.T) {
		_, err := f.Fetch(ctx, "/i18n/de.json", resource.CacheDefault)
		require.NoError(t, err)
		assert.Empty(t, lastCacheControl)
	})

	t.Run("404 is a not-found status error", func(t *testing.T) {
		_, err := f.Fetch(ctx, "/partials/missing.html", resource.CacheDefault)
		require.Error(t, err)
		assert.True(t, resource.IsNotFound(err))
	})

	t.Run("500 is a status error", func(t *testing.T) {
		_, err := f.Fetch(ctx, "/broken", resource.CacheDefault)
		var se *resource.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusInternalServerError, se.Code)
		assert.False(t, resource.IsNotFound(err))
	})
}

func TestNewHTTPFetcher_InvalidBase(t *testing.T) {
	_, err := resource.NewHTTPFetcher("/relative")
	assert.ErrorIs(t, err, resource.ErrInvalidConfig)
}

func TestHTTPFetcher_BodyLimit(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/partials/header.html":
			_, _ = w.Write([]byte("<nav>0123456789</nav>"))
		default:
			_, _ = w.Write([]byte("<nav></nav>"))
		}
	}))
	defer srv.Close()

	f, err := resource.NewHTTPFetcher(srv.URL, resource.WithHTTPClient(srv.Client()), resource.WithMaxBodySize(11))
	require.NoError(t, err)
	ctx := context.Background()

	body, err := f.Fetch(ctx, "/partials/footer.html", resource.CacheDefault)
	require.NoError(t, err, "a body of exactly the limit is accepted")
	assert.Equal(t, "<nav></nav>", string(body))

	body, err = f.Fetch(ctx, "/partials/header.html", resource.CacheDefault)
	require.ErrorIs(t, err, resource.ErrBodyTooLarge)
	assert.Nil(t, body, "oversized bodies are never truncated")
}
