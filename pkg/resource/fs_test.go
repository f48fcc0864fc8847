package resource_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

func TestFSFetcher(t *testing.T) {
	fsys := fstest.MapFS{
		"partials/header.html": {Data: []byte("<header>__BASE__</header>")},
		"data/posts.json":      {Data: []byte(`[]`)},
	}
	f := resource.NewFSFetcher(fsys)
	ctx := context.Background()

	body, err := f.Fetch(ctx, "/partials/header.html", resource.CacheDefault)
	require.NoError(t, err)
	assert.Equal(t, "<header>__BASE__</header>", string(body))

	body, err = f.Fetch(ctx, "./data/posts.json?v=2", resource.CacheBypass)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	_, err = f.Fetch(ctx, "/partials/footer.html", resource.CacheDefault)
	assert.True(t, resource.IsNotFound(err))

	_, err = f.Fetch(ctx, "https://example.ch/x", resource.CacheDefault)
	assert.ErrorIs(t, err, resource.ErrUnsupportedRef)
}

func TestMapFetcher(t *testing.T) {
	m := resource.NewMapFetcher(map[string]string{"/i18n/de.json": "{}"})
	ctx := context.Background()

	_, err := m.Fetch(ctx, "i18n/de.json", resource.CacheBypass)
	require.NoError(t, err)
	_, err = m.Fetch(ctx, "/i18n/de.json", resource.CacheBypass)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Hits("/i18n/de.json"))

	_, err = m.Fetch(ctx, "/i18n/fr.json", resource.CacheBypass)
	assert.True(t, resource.IsNotFound(err))

	boom := errors.New("offline")
	m.Fail("/i18n/de.json", boom)
	_, err = m.Fetch(ctx, "/i18n/de.json", resource.CacheBypass)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, m.TotalHits())
}
