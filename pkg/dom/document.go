package dom

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Document is a parsed HTML page plus its event listeners.
type Document struct {
	doc    *goquery.Document
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[string][]*listenerEntry
	nextID    uint64
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used to report failing listeners.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// Parse reads a full HTML document.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Join(ErrParseDocument, err)
	}
	d := &Document{
		doc:       gq,
		logger:    logger.Discard(),
		listeners: make(map[string][]*listenerEntry),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Find returns every element matching the CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// ByID returns the element with the given id. The selection is empty when
// no such element exists.
func (d *Document) ByID(id string) *goquery.Selection {
	return d.doc.Find(`[id="` + id + `"]`).First()
}

// Root returns the <html> element.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Find("html").First()
}

// Body returns the <body> element.
func (d *Document) Body() *goquery.Selection {
	return d.doc.Find("body").First()
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return errors.Join(ErrRenderDocument, err)
		}
	}
	return nil
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Data returns the value of a data-* attribute on sel, e.g. Data(body, "base-path").
func Data(sel *goquery.Selection, name string) (string, bool) {
	return sel.Attr("data-" + name)
}

// SameNode reports whether a and b point at the same first element.
func SameNode(a, b *goquery.Selection) bool {
	if a == nil || b == nil || a.Length() == 0 || b.Length() == 0 {
		return false
	}
	return a.Get(0) == b.Get(0)
}
