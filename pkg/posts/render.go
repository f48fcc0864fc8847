package posts

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goodsign/monday"
	"golang.org/x/net/html"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// ReadEntryKey is the translation key of the "read entry" phrase used in
// card labels.
const ReadEntryKey = "posts.readEntry"

var readEntryFallback = map[i18n.Language]string{
	"de": "Eintrag lesen",
	"en": "Read entry",
}

type dateFormat struct {
	locale monday.Locale
	layout string
}

var dateFormats = map[i18n.Language]dateFormat{
	"de": {locale: monday.LocaleDeDE, layout: "2. January 2006"},
	"en": {locale: monday.LocaleEnGB, layout: "2 January 2006"},
	"fr": {locale: monday.LocaleFrFR, layout: "2 January 2006"},
	"it": {locale: monday.LocaleItIT, layout: "2 January 2006"},
}

// Renderer builds post cards.
type Renderer struct {
	defaultLang i18n.Language
	phrase      func(i18n.Language) (string, bool)
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRendererDefaultLanguage sets the fallback language for localized
// fields and date formats. Default i18n.DefaultLanguage.
func WithRendererDefaultLanguage(lang i18n.Language) RendererOption {
	return func(r *Renderer) {
		if lang != "" {
			r.defaultLang = lang
		}
	}
}

// WithReadEntry sets where the "read entry" phrase comes from, typically
// the active translation document.
func WithReadEntry(fn func(i18n.Language) (string, bool)) RendererOption {
	return func(r *Renderer) {
		if fn != nil {
			r.phrase = fn
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{defaultLang: i18n.DefaultLanguage}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render replaces the content of container with one card per record, in
// order. The container becomes a polite live list region. Image and entry
// paths are resolved against prefix.
func (r *Renderer) Render(container *goquery.Selection, records []Record, prefix string, lang i18n.Language) {
	if container == nil || container.Length() == 0 {
		return
	}

	container.Empty()
	container.SetAttr("aria-live", "polite")
	container.SetAttr("role", "list")

	readEntry := r.readEntry(lang)
	for _, rec := range records {
		container.AppendNodes(r.card(rec, prefix, lang, readEntry))
	}
}

func (r *Renderer) card(rec Record, prefix string, lang i18n.Language, readEntry string) *html.Node {
	title := rec.Name.Resolve(lang, r.defaultLang)
	alt := rec.Alt.Resolve(lang, r.defaultLang)
	if alt == "" {
		alt = title
	}

	label := title
	if readEntry != "" {
		label = title + " – " + readEntry
	}

	var media *html.Node
	if rec.Image != "" {
		media = dom.Element("div", []html.Attribute{dom.Attr("class", "post-card__media")},
			dom.Element("img", []html.Attribute{
				dom.Attr("src", ResolvePath(prefix, rec.Image)),
				dom.Attr("alt", alt),
				dom.Attr("loading", "lazy"),
				dom.Attr("decoding", "async"),
			}),
		)
	}

	body := dom.Element("div", []html.Attribute{dom.Attr("class", "post-card__body")},
		dom.Element("time", []html.Attribute{
			dom.Attr("class", "post-card__date"),
			dom.Attr("datetime", rec.Date),
		}, dom.Text(r.FormatDate(rec, lang))),
		dom.Element("h3", []html.Attribute{dom.Attr("class", "post-card__title")}, dom.Text(title)),
		dom.Element("p", []html.Attribute{dom.Attr("class", "post-card__caption")},
			dom.Text(rec.Caption.Resolve(lang, r.defaultLang))),
	)

	link := dom.Element("a", []html.Attribute{
		dom.Attr("class", "post-card__link"),
		dom.Attr("href", ResolvePath(prefix, rec.Slug)),
		dom.Attr("aria-label", label),
	}, media, body)

	return dom.Element("article", []html.Attribute{
		dom.Attr("class", "post-card"),
		dom.Attr("role", "listitem"),
		dom.Attr("data-slug", rec.Slug),
	}, link)
}

// FormatDate renders the publish date for lang, or the raw value when it
// cannot be parsed.
func (r *Renderer) FormatDate(rec Record, lang i18n.Language) string {
	t, ok := rec.Time()
	if !ok {
		return rec.Date
	}
	return formatDate(t, lang, r.defaultLang)
}

func formatDate(t time.Time, lang, def i18n.Language) string {
	f, ok := dateFormats[lang]
	if !ok {
		if f, ok = dateFormats[def]; !ok {
			f = dateFormats["en"]
		}
	}
	return monday.Format(t, f.layout, f.locale)
}

func (r *Renderer) readEntry(lang i18n.Language) string {
	if r.phrase != nil {
		if s, ok := r.phrase(lang); ok && s != "" {
			return s
		}
	}
	if s, ok := readEntryFallback[lang]; ok {
		return s
	}
	return readEntryFallback[r.defaultLang]
}

// ResolvePath joins ref onto prefix. Absolute URLs and root-relative paths
// are returned unchanged.
func ResolvePath(prefix, ref string) string {
	if ref == "" || resource.IsAbsoluteURL(ref) || strings.HasPrefix(ref, "/") {
		return ref
	}
	if prefix == "" {
		return ref
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimPrefix(ref, "./")
}
