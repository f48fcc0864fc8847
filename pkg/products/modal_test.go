package products_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/products"
)

const page = `<html><body data-base-path="..">
<ul>
	<li class="beer-item" data-beer="ipa"><img src="ipa.webp"><span class="name">IPA</span></li>
	<li class="beer-item" data-beer="weizen">Weizen</li>
	<li class="beer-item" data-beer="stout">Stout</li>
</ul>
<div id="product-modal" class="modal hidden">
	<div class="modal-panel">
		<button class="product-modal-close"><span>&times;</span></button>
		<div id="product-modal-body"></div>
	</div>
</div>
</body></html>`

func setup(t *testing.T, opts ...products.Option) (*dom.Document, *products.Modal) {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	m := products.NewModal(doc, opts...)
	_, ok := m.Bind()
	require.True(t, ok)
	return doc, m
}

func TestModal_OpenAndClose(t *testing.T) {
	t.Parallel()
	doc, m := setup(t, products.WithBasePath(".."))
	ctx := context.Background()

	doc.Click(ctx, doc.Find(`[data-beer="ipa"] .name`))
	require.True(t, m.IsOpen())
	assert.Equal(t, "IPA", doc.Find(".product-modal__name").Text())
	assert.Equal(t, "More hops than a mountain goat.", doc.Find(".product-modal__tagline").Text())
	assert.Equal(t, "ABV: 5.6 % ABV", doc.Find(".product-modal__abv").Text())
	src, _ := doc.Find(".product-modal__image img").Attr("src")
	assert.Equal(t, "../media/images/products/ipa.webp", src)

	doc.Click(ctx, doc.Find(".product-modal-close span"))
	assert.False(t, m.IsOpen())

	doc.Click(ctx, doc.Find(`[data-beer="weizen"]`))
	assert.True(t, m.IsOpen())
	assert.Equal(t, "Weizen", doc.Find(".product-modal__name").Text())
	assert.Equal(t, 1, doc.Find(".product-modal__content").Length(), "body is replaced, not appended")

	doc.Click(ctx, doc.Find(".modal-panel"))
	assert.True(t, m.IsOpen(), "clicks inside the panel keep it open")

	doc.Click(ctx, doc.ByID(products.ModalID))
	assert.False(t, m.IsOpen(), "backdrop click closes")
}

func TestModal_UnknownProduct(t *testing.T) {
	t.Parallel()
	doc, m := setup(t)

	doc.Click(context.Background(), doc.Find(`[data-beer="stout"]`))
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, doc.ByID(products.ModalBodyID).Children().Length())
}

func TestModal_TranslatedTexts(t *testing.T) {
	t.Parallel()
	texts := i18n.Document{
		"products": map[string]any{
			"helles": map[string]any{"tagline": "Frischer als die Alpenluft."},
			"labels": map[string]any{"pairs": "Passt zu:"},
		},
	}
	doc, m := setup(t, products.WithTexts(func() i18n.Document { return texts }))

	require.True(t, m.Open(context.Background(), "helles"))
	assert.Equal(t, "Frischer als die Alpenluft.", doc.Find(".product-modal__tagline").Text())
	assert.Equal(t, "Helles", doc.Find(".product-modal__name").Text())
	assert.Equal(t, "Passt zu: Bratwurst, pretzels and lakeside afternoons.", doc.Find(".product-modal__pairs").Text())
}

func TestModal_PageWithoutModal(t *testing.T) {
	t.Parallel()
	doc, err := dom.ParseString(`<html><body><div class="beer-item" data-beer="ipa"></div></body></html>`)
	require.NoError(t, err)

	_, ok := products.NewModal(doc).Bind()
	assert.False(t, ok)
}

func TestCatalogue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"helles", "ipa", "weizen"}, products.DefaultCatalogue().IDs())
}
