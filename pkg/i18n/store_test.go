package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

const pageHTML = `<!DOCTYPE html>
<html lang="de"><head><title data-lang-key="meta.title">Brauerei</title></head>
<body data-base-path=".">
<h1 data-lang-key="hero.title">Willkommen</h1>
<p data-lang-key="a.b.c">Originaltext</p>
<img id="hero" src="hero.jpg" alt="Sudhaus" data-lang-key="hero.alt" data-lang-attr="alt">
<nav>
<button data-lang-switch="de" class="lang is-active"><span>DE</span></button>
<button data-lang-switch="en" class="lang"><span id="en-label">EN</span></button>
</nav>
</body></html>`

func newFixture(t *testing.T, opts ...i18n.Option) (*dom.Document, *resource.MapFetcher, *i18n.Store) {
	t.Helper()
	page, err := dom.ParseString(pageHTML)
	require.NoError(t, err)

	fetcher := resource.NewMapFetcher(map[string]string{
		"i18n/de.json": `{"meta":{"title":"Brauerei Andermatt"},"hero":{"title":"Grüezi","alt":"Sudhaus"}}`,
		"i18n/en.json": `{"meta":{"title":"Andermatt Brewery"},"hero":{"title":"Welcome","alt":"Brewhouse"}}`,
	})
	return page, fetcher, i18n.NewStore(page, fetcher, opts...)
}

func text(page *dom.Document, sel string) string {
	return page.Find(sel).First().Text()
}

func TestStore_SetLanguageTwiceFetchesOnce(t *testing.T) {
	t.Parallel()
	for _, lang := range []i18n.Language{"de", "en"} {
		t.Run(string(lang), func(t *testing.T) {
			t.Parallel()
			_, fetcher, store := newFixture(t)
			ctx := context.Background()

			first, err := store.SetLanguage(ctx, lang)
			require.NoError(t, err)
			second, err := store.SetLanguage(ctx, lang)
			require.NoError(t, err)

			assert.Equal(t, 1, fetcher.TotalHits())
			assert.Equal(t, first, second)
			assert.Equal(t, lang, store.Language())
		})
	}
}

func TestStore_MissingKeyLeavesContent(t *testing.T) {
	t.Parallel()
	page, _, store := newFixture(t)

	_, err := store.SetLanguage(context.Background(), "en")
	require.NoError(t, err)

	_, ok := i18n.ResolveKey("a.b.c", store.Document())
	assert.False(t, ok)
	assert.Equal(t, "Originaltext", text(page, `[data-lang-key="a.b.c"]`))
	assert.Equal(t, "Welcome", text(page, "h1"))
}

func TestStore_SwitchAppliesAndPersists(t *testing.T) {
	t.Parallel()
	p := prefs.NewMemoryStore(nil)
	page, _, store := newFixture(t, i18n.WithPrefs(p))
	ctx := context.Background()

	_, err := store.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.Language("de"), store.Language())
	assert.Equal(t, "Grüezi", text(page, "h1"))

	_, err = store.SetLanguage(ctx, "en")
	require.NoError(t, err)

	assert.Equal(t, "Welcome", text(page, "h1"))
	assert.Equal(t, "Andermatt Brewery", text(page, "title"))
	alt, _ := page.ByID("hero").Attr("alt")
	assert.Equal(t, "Brewhouse", alt)
	lang, _ := page.Root().Attr("lang")
	assert.Equal(t, "en", lang)

	stored, ok, err := p.Get(ctx, i18n.StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", stored)
}

func TestStore_Subscribers(t *testing.T) {
	t.Parallel()
	_, fetcher, store := newFixture(t)
	ctx := context.Background()

	var calls []i18n.Language
	store.Subscribe(func(context.Context, i18n.Language, i18n.Document) error {
		panic("broken subscriber")
	})
	store.Subscribe(func(context.Context, i18n.Language, i18n.Document) error {
		return errors.New("failing subscriber")
	})
	unsubscribe := store.Subscribe(func(_ context.Context, lang i18n.Language, doc i18n.Document) error {
		require.NotNil(t, doc)
		calls = append(calls, lang)
		return nil
	})

	_, err := store.Init(ctx)
	require.NoError(t, err)
	assert.Empty(t, calls, "initial load does not notify")

	_, err = store.SetLanguage(ctx, "en")
	require.NoError(t, err)
	_, err = store.SetLanguage(ctx, "en")
	require.NoError(t, err)
	_, err = store.SetLanguage(ctx, "de")
	require.NoError(t, err)

	assert.Equal(t, []i18n.Language{"en", "de"}, calls)
	assert.Equal(t, 2, fetcher.TotalHits(), "switching back uses the cache")

	unsubscribe()
	_, err = store.SetLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, calls, 2)

	assert.NotPanics(t, func() { store.Subscribe(nil)() })
}

func TestStore_FailedSwitchKeepsState(t *testing.T) {
	t.Parallel()
	page, fetcher, store := newFixture(t)
	ctx := context.Background()

	_, err := store.Init(ctx)
	require.NoError(t, err)
	before := page.String()

	notified := false
	store.Subscribe(func(context.Context, i18n.Language, i18n.Document) error {
		notified = true
		return nil
	})

	_, err = store.SetLanguage(ctx, "fr")
	require.ErrorIs(t, err, i18n.ErrLoadDocument)
	assert.True(t, resource.IsNotFound(err))

	fetcher.Set("i18n/it.json", `{"broken": `)
	_, err = store.SetLanguage(ctx, "it")
	require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	assert.Equal(t, i18n.Language("de"), store.Language())
	assert.Equal(t, before, page.String())
	assert.False(t, notified)
}

func TestStore_UnsupportedLanguage(t *testing.T) {
	t.Parallel()
	_, fetcher, store := newFixture(t, i18n.WithLanguages("de", "en"))

	_, err := store.SetLanguage(context.Background(), "fr")
	var unsupported *i18n.ErrLanguageNotSupported
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, i18n.Language("fr"), unsupported.Lang)
	assert.Equal(t, 0, fetcher.TotalHits())
}

func TestStore_EmptyCodeMeansDefault(t *testing.T) {
	t.Parallel()
	_, _, store := newFixture(t, i18n.WithDefaultLanguage("en"))

	_, err := store.SetLanguage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, i18n.Language("en"), store.Language())
}

func TestStore_Init(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persisted preference wins", func(t *testing.T) {
		t.Parallel()
		p := prefs.NewMemoryStore(map[string]string{i18n.StorageKey: "en"})
		_, _, store := newFixture(t, i18n.WithPrefs(p), i18n.WithPreferredLanguage("de"))

		_, err := store.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, i18n.Language("en"), store.Language())
	})

	t.Run("preferred before default", func(t *testing.T) {
		t.Parallel()
		_, _, store := newFixture(t, i18n.WithPreferredLanguage("en"))

		_, err := store.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, i18n.Language("en"), store.Language())
	})

	t.Run("unsupported preference uses default", func(t *testing.T) {
		t.Parallel()
		p := prefs.NewMemoryStore(map[string]string{i18n.StorageKey: "fr"})
		_, fetcher, store := newFixture(t, i18n.WithPrefs(p), i18n.WithLanguages("de", "en"))

		_, err := store.Init(ctx)
		require.NoError(t, err)
		assert.Equal(t, i18n.Language("de"), store.Language())
		assert.Equal(t, 1, fetcher.TotalHits())
	})

	t.Run("failing preference retries default", func(t *testing.T) {
		t.Parallel()
		_, fetcher, store := newFixture(t, i18n.WithPreferredLanguage("en"))
		fetcher.Fail("i18n/en.json", resource.ErrFetch)

		doc, err := store.Init(ctx)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, i18n.Language("de"), store.Language())
	})

	t.Run("nothing loads", func(t *testing.T) {
		t.Parallel()
		page, err := dom.ParseString(pageHTML)
		require.NoError(t, err)
		store := i18n.NewStore(page, resource.NewMapFetcher(nil))

		_, err = store.Init(ctx)
		require.Error(t, err)
		assert.Nil(t, store.Document())
		assert.False(t, store.Reapply(ctx))
	})
}

func TestStore_DocumentPath(t *testing.T) {
	t.Parallel()
	page, err := dom.ParseString(pageHTML)
	require.NoError(t, err)

	store := i18n.NewStore(page, resource.NewMapFetcher(nil),
		i18n.WithBasePath(".."),
		i18n.WithLocation("blog/y.html"),
	)
	assert.Equal(t, "/i18n/en.json", store.DocumentPath("en"))

	store = i18n.NewStore(page, resource.NewMapFetcher(nil),
		i18n.WithLocation("https://example.ch/index.html"),
		i18n.WithParser(i18n.NewYAMLParser()),
	)
	assert.Equal(t, "https://example.ch/i18n/de.yaml", store.DocumentPath("de"))
}

func TestStore_YAMLDocuments(t *testing.T) {
	t.Parallel()
	page, err := dom.ParseString(pageHTML)
	require.NoError(t, err)
	fetcher := resource.NewMapFetcher(map[string]string{
		"i18n/en.yaml": "hero:\n  title: Welcome\n",
	})

	store := i18n.NewStore(page, fetcher, i18n.WithParser(i18n.NewYAMLParser()))
	_, err = store.SetLanguage(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", text(page, "h1"))

	got, ok := store.Translate("hero.title")
	assert.True(t, ok)
	assert.Equal(t, "Welcome", got)
}
