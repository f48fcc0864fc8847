package posts_test

import (
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/posts"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

const manifestJSON = `[
	{"slug":"blog/v.html","date":"2024-02-01","name":{"de":"Hopfen","en":"Hops"}},
	{"slug":"blog/w.html","date":"2024-03-01","name":{"de":"Malz","en":"Malt"}},
	{"slug":"blog/x.html","date":"2024-04-01","name":{"de":"Wasser","en":"Water"}},
	{"slug":"blog/y.html","date":"2024-06-01","name":{"de":"Sudtag","en":"Brew day"}}
]`

type fixture struct {
	page    *dom.Document
	fetcher *resource.MapFetcher
	store   *i18n.Store
	board   *posts.Board
}

func newBoardFixture(t *testing.T, body string, opts ...posts.BoardOption) fixture {
	t.Helper()
	page, err := dom.ParseString(`<html><head></head>` + body + `</html>`)
	require.NoError(t, err)

	fetcher := resource.NewMapFetcher(map[string]string{
		"data/posts.json": manifestJSON,
		"i18n/de.json":    `{"posts":{"readEntry":"Eintrag lesen"}}`,
		"i18n/en.json":    `{"posts":{"readEntry":"Read the entry"}}`,
	})
	store := i18n.NewStore(page, fetcher)
	_, err = store.Init(context.Background())
	require.NoError(t, err)

	board := posts.NewBoard(page, store, posts.NewManifest(fetcher), opts...)
	t.Cleanup(board.Close)
	return fixture{page: page, fetcher: fetcher, store: store, board: board}
}

func titles(page *dom.Document, id string) []string {
	return page.ByID(id).Find(".post-card__title").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestBoard_InitFixedContainers(t *testing.T) {
	t.Parallel()
	f := newBoardFixture(t, `<body data-post-slug="blog/y.html">
		<div id="posts-container"></div>
		<div id="blog-posts"></div>
		<div id="related-posts"></div>
	</body>`)

	n := f.board.Init(context.Background(), ".")
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, f.fetcher.Hits("data/posts.json"))

	assert.Equal(t, []string{"Sudtag", "Wasser", "Malz"}, titles(f.page, "posts-container"))
	assert.Equal(t, []string{"Sudtag", "Wasser", "Malz", "Hopfen"}, titles(f.page, "blog-posts"))
	assert.Equal(t, []string{"Wasser", "Malz", "Hopfen"}, titles(f.page, "related-posts"))

	label, _ := f.page.ByID("blog-posts").Find("a").First().Attr("aria-label")
	assert.Equal(t, "Sudtag – Eintrag lesen", label)
}

func TestBoard_RelatedExcludesCurrentEntry(t *testing.T) {
	t.Parallel()
	f := newBoardFixture(t, `<body><div id="related-posts"></div></body>`)
	records := posts.NewManifest(f.fetcher).Fetch(context.Background(), "./data/posts.json")

	target, err := f.board.Register(context.Background(), posts.Target{
		ID:      posts.ContainerRelated,
		Prefix:  "..",
		Exclude: "blog/y.html",
	}, records)
	require.NoError(t, err)

	assert.Len(t, target.Posts(), 3)
	for _, r := range target.Posts() {
		assert.NotEqual(t, "blog/y.html", r.Slug)
	}
	assert.Equal(t, 0, f.page.Find(`[data-slug="blog/y.html"]`).Length())
	href, _ := f.page.ByID("related-posts").Find("a").First().Attr("href")
	assert.Equal(t, "../blog/x.html", href)
}

func TestBoard_ReRendersOnLanguageChange(t *testing.T) {
	t.Parallel()
	f := newBoardFixture(t, `<body><div id="blog-posts"></div></body>`)
	ctx := context.Background()

	var rendered []i18n.Language
	f.page.AddEventListener(posts.EventRendered, func(_ context.Context, ev *dom.Event) {
		d := ev.Detail.(posts.RenderedDetail)
		assert.Equal(t, posts.ContainerBlog, d.Container)
		assert.Equal(t, 4, d.Count)
		rendered = append(rendered, d.Lang)
	})

	f.board.Init(ctx, ".")
	require.Len(t, rendered, 1)
	manifestHits := f.fetcher.Hits("data/posts.json")

	for _, lang := range []i18n.Language{"en", "de", "en"} {
		_, err := f.store.SetLanguage(ctx, lang)
		require.NoError(t, err)
	}

	assert.Equal(t, []i18n.Language{"de", "en", "de", "en"}, rendered)
	assert.Equal(t, manifestHits, f.fetcher.Hits("data/posts.json"))
	assert.Equal(t, []string{"Brew day", "Water", "Malt", "Hops"}, titles(f.page, "blog-posts"))

	label, _ := f.page.ByID("blog-posts").Find("a").First().Attr("aria-label")
	assert.Equal(t, "Brew day – Read the entry", label)
}

func TestBoard_NoContainers(t *testing.T) {
	t.Parallel()
	f := newBoardFixture(t, `<body><p>Kontakt</p></body>`)

	assert.Equal(t, 0, f.board.Init(context.Background(), "."))
	assert.Equal(t, 0, f.fetcher.Hits("data/posts.json"))

	_, err := f.board.Register(context.Background(), posts.Target{ID: "missing"}, nil)
	require.ErrorIs(t, err, posts.ErrNoContainer)
}

func TestBoard_Close(t *testing.T) {
	t.Parallel()
	f := newBoardFixture(t, `<body><div id="blog-posts"></div></body>`)
	ctx := context.Background()
	f.board.Init(ctx, ".")

	f.board.Close()
	_, err := f.store.SetLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sudtag", "Wasser", "Malz", "Hopfen"}, titles(f.page, "blog-posts"))
}
