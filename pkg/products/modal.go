package products

import (
	"context"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/posts"
)

const (
	ModalID     = "product-modal"
	ModalBodyID = "product-modal-body"
	HiddenClass = "hidden"

	itemSelector  = ".beer-item"
	closeSelector = ".product-modal-close"
)

var labelFallback = map[string]string{
	"abv":   "ABV:",
	"notes": "Tasting Notes:",
	"pairs": "Pairs With:",
}

// Modal shows catalogue entries in the page's product modal.
type Modal struct {
	page      *dom.Document
	catalogue Catalogue
	texts     func() i18n.Document
	basePath  string
	logger    *slog.Logger
}

// Option configures a Modal.
type Option func(*Modal)

// WithCatalogue replaces the default catalogue.
func WithCatalogue(c Catalogue) Option {
	return func(m *Modal) {
		if c != nil {
			m.catalogue = c
		}
	}
}

// WithTexts sets the source of translated texts, usually Store.Document.
func WithTexts(fn func() i18n.Document) Option {
	return func(m *Modal) {
		if fn != nil {
			m.texts = fn
		}
	}
}

// WithBasePath sets the prefix of product image paths. Default ".".
func WithBasePath(base string) Option {
	return func(m *Modal) {
		if base != "" {
			m.basePath = base
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Modal) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModal creates a Modal for page.
func NewModal(page *dom.Document, opts ...Option) *Modal {
	m := &Modal{
		page:      page,
		catalogue: DefaultCatalogue(),
		texts:     func() i18n.Document { return nil },
		basePath:  ".",
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bind attaches the click handling. Pages without the modal are left alone
// and Bind reports false.
func (m *Modal) Bind() (unbind func(), ok bool) {
	if m.page.ByID(ModalID).Length() == 0 || m.page.ByID(ModalBodyID).Length() == 0 {
		return func() {}, false
	}

	remove := m.page.AddEventListener(dom.EventClick, func(ctx context.Context, ev *dom.Event) {
		modal := m.page.ByID(ModalID)
		switch {
		case ev.Target.Closest(closeSelector).Length() > 0:
			m.Close()
		case dom.SameNode(ev.Target, modal):
			m.Close()
		default:
			item := ev.Target.Closest(itemSelector)
			if item.Length() == 0 {
				return
			}
			id, _ := dom.Data(item, "beer")
			if !m.Open(ctx, id) {
				m.logger.DebugContext(ctx, "unknown product", slog.String("product", id))
			}
		}
	})
	return remove, true
}

// Open renders product id into the modal body and reveals the modal. It
// reports false for unknown ids.
func (m *Modal) Open(_ context.Context, id string) bool {
	p, ok := m.catalogue[id]
	if !ok {
		return false
	}
	p = p.Localize(m.texts())

	body := m.page.ByID(ModalBodyID)
	body.Empty()
	body.AppendNodes(m.content(p))
	m.page.ByID(ModalID).RemoveClass(HiddenClass)
	return true
}

// Close hides the modal.
func (m *Modal) Close() {
	m.page.ByID(ModalID).AddClass(HiddenClass)
}

// IsOpen reports whether the modal is visible.
func (m *Modal) IsOpen() bool {
	modal := m.page.ByID(ModalID)
	return modal.Length() > 0 && !modal.HasClass(HiddenClass)
}

func (m *Modal) label(field string) string {
	if v, ok := i18n.Lookup("products.labels."+field, m.texts()); ok && v != "" {
		return v
	}
	return labelFallback[field]
}

func (m *Modal) content(p Product) *html.Node {
	class := func(v string) []html.Attribute { return []html.Attribute{dom.Attr("class", v)} }
	labelled := func(field, value string) *html.Node {
		return dom.Element("p", class("product-modal__"+field),
			dom.Element("strong", nil, dom.Text(m.label(field))),
			dom.Text(" "+value),
		)
	}

	return dom.Element("div", class("product-modal__content"),
		dom.Element("div", class("product-modal__image"),
			dom.Element("img", []html.Attribute{
				dom.Attr("src", posts.ResolvePath(m.basePath, "media/images/products/"+p.ID+".webp")),
				dom.Attr("alt", p.Name),
			}),
		),
		dom.Element("h3", class("product-modal__name"), dom.Text(p.Name)),
		dom.Element("p", class("product-modal__tagline"), dom.Text(p.Tagline)),
		labelled("abv", p.ABV),
		dom.Element("div", class("product-modal__details"),
			labelled("notes", p.Notes),
			labelled("pairs", p.Pairs),
		),
	)
}
