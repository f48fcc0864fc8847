package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
)

func TestApply(t *testing.T) {
	t.Parallel()
	page, err := dom.ParseString(pageHTML)
	require.NoError(t, err)
	ctx := context.Background()

	var detail i18n.AppliedDetail
	events := 0
	page.AddEventListener(i18n.EventApplied, func(_ context.Context, ev *dom.Event) {
		events++
		detail, _ = ev.Detail.(i18n.AppliedDetail)
	})

	doc := i18n.Document{
		"hero": map[string]any{
			"title": "<em>Welcome</em>",
			"alt":   map[string]any{"nested": "not a scalar"},
		},
	}
	updated := i18n.Apply(ctx, page, "en", doc)

	assert.Equal(t, 1, updated)
	assert.Equal(t, "Welcome", page.Find("h1 em").Text(), "values are written as HTML")
	alt, _ := page.ByID("hero").Attr("alt")
	assert.Equal(t, "Sudhaus", alt, "non-scalar values leave the element unchanged")
	assert.Equal(t, "Brauerei", text(page, "title"))

	assert.False(t, page.Find(`[data-lang-switch="de"]`).HasClass(i18n.ActiveClass))
	assert.True(t, page.Find(`[data-lang-switch="en"]`).HasClass(i18n.ActiveClass))

	assert.Equal(t, 1, events)
	assert.Equal(t, i18n.Language("en"), detail.Lang)
	assert.Equal(t, doc, detail.Document)
}

func TestApply_NilDocument(t *testing.T) {
	t.Parallel()
	page, err := dom.ParseString(pageHTML)
	require.NoError(t, err)

	events := 0
	page.AddEventListener(i18n.EventApplied, func(context.Context, *dom.Event) { events++ })

	assert.Equal(t, 0, i18n.Apply(context.Background(), page, "en", nil))
	assert.Equal(t, 0, i18n.Apply(context.Background(), nil, "en", i18n.Document{}))
	assert.Equal(t, 0, events)
	lang, _ := page.Root().Attr("lang")
	assert.Equal(t, "de", lang)
}

func TestStore_Bind(t *testing.T) {
	t.Parallel()
	page, _, store := newFixture(t)
	ctx := context.Background()

	unbind := store.Bind()
	_, err := store.Init(ctx)
	require.NoError(t, err)

	prevented := page.Click(ctx, page.ByID("en-label"))
	assert.True(t, prevented)
	assert.Equal(t, i18n.Language("en"), store.Language())
	assert.Equal(t, "Welcome", text(page, "h1"))

	assert.False(t, page.Click(ctx, page.Find("h1")), "clicks outside switches are ignored")

	page.Body().AppendHtml(`<footer><span id="late" data-lang-key="hero.title">Grüezi</span></footer>`)
	page.Emit(ctx, "partials:loaded", nil)
	assert.Equal(t, "Welcome", text(page, "#late"))

	unbind()
	page.Click(ctx, page.Find(`[data-lang-switch="de"]`))
	assert.Equal(t, i18n.Language("en"), store.Language())
}

func TestApply_SwitchCodeCase(t *testing.T) {
	t.Parallel()
	page, err := dom.ParseString(`<html><body>
		<button data-lang-switch=" EN ">EN</button>
		<button data-lang-switch="De">DE</button>
	</body></html>`)
	require.NoError(t, err)

	i18n.Apply(context.Background(), page, "en", i18n.Document{})
	assert.True(t, page.Find(`button:contains("EN")`).HasClass(i18n.ActiveClass))
	assert.False(t, page.Find(`button:contains("DE")`).HasClass(i18n.ActiveClass))

	i18n.Apply(context.Background(), page, "de", i18n.Document{})
	assert.False(t, page.Find(`button:contains("EN")`).HasClass(i18n.ActiveClass))
	assert.True(t, page.Find(`button:contains("DE")`).HasClass(i18n.ActiveClass))
}
