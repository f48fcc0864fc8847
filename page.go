package sitekit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/lifecycle"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/partials"
	"github.com/brauerei-andermatt/sitekit/pkg/posts"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/products"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// DefaultBasePath is used when the body carries no data-base-path.
const DefaultBasePath = "."

// CurrentYearID is the element receiving the current year.
const CurrentYearID = "current-year"

// Page is the controller of one page being assembled.
type Page struct {
	doc     *dom.Document
	fetcher resource.Fetcher

	location    string
	basePath    string
	defaultLang i18n.Language
	prefs       prefs.Store
	storeOpts   []i18n.Option
	viewport    posts.Viewport
	now         func() time.Time
	logger      *slog.Logger

	signaler *lifecycle.Signaler
	loader   *partials.Loader
	store    *i18n.Store
	manifest *posts.Manifest
	board    *posts.Board
	modal    *products.Modal

	mu      sync.Mutex
	booted  bool
	unbinds []func()
}

// Open fetches the page at location and wraps it.
func Open(ctx context.Context, fetcher resource.Fetcher, location string, opts ...Option) (*Page, error) {
	data, err := fetcher.Fetch(ctx, resource.Resolve("", location), resource.CacheDefault)
	if err != nil {
		return nil, errors.Join(ErrOpenPage, err)
	}
	return Parse(data, fetcher, append([]Option{WithLocation(location)}, opts...)...)
}

// Parse wraps the HTML in data.
func Parse(data []byte, fetcher resource.Fetcher, opts ...Option) (*Page, error) {
	p := newPage(fetcher, opts...)
	doc, err := dom.ParseString(string(data), dom.WithLogger(p.logger))
	if err != nil {
		return nil, errors.Join(ErrOpenPage, err)
	}
	p.wire(doc)
	return p, nil
}

// NewPage wraps an already parsed document.
func NewPage(doc *dom.Document, fetcher resource.Fetcher, opts ...Option) *Page {
	p := newPage(fetcher, opts...)
	p.wire(doc)
	return p
}

func newPage(fetcher resource.Fetcher, opts ...Option) *Page {
	p := &Page{
		fetcher:     fetcher,
		defaultLang: i18n.DefaultLanguage,
		prefs:       prefs.NewMemoryStore(nil),
		now:         time.Now,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Page) wire(doc *dom.Document) {
	p.doc = doc
	if p.basePath == "" {
		p.basePath = DefaultBasePath
		if base, ok := dom.Data(doc.Body(), "base-path"); ok && base != "" {
			p.basePath = base
		}
	}
	log := p.logger.With(logger.Path(p.location))

	p.signaler = lifecycle.New(lifecycle.WithLogger(log))
	p.loader = partials.NewLoader(p.fetcher,
		partials.WithBasePath(p.basePath),
		partials.WithLocation(p.location),
		partials.WithLogger(log),
	)
	p.store = i18n.NewStore(doc, p.fetcher, append([]i18n.Option{
		i18n.WithBasePath(p.basePath),
		i18n.WithLocation(p.location),
		i18n.WithPrefs(p.prefs),
		i18n.WithLogger(log),
	}, p.storeOpts...)...)
	p.manifest = posts.NewManifest(p.fetcher,
		posts.WithManifestLocation(p.location),
		posts.WithManifestLogger(log),
	)

	boardOpts := []posts.BoardOption{
		posts.WithBoardLogger(log),
		posts.WithRenderer(posts.NewRenderer(
			posts.WithRendererDefaultLanguage(p.defaultLang),
			posts.WithReadEntry(func(i18n.Language) (string, bool) {
				return p.store.Translate(posts.ReadEntryKey)
			}),
		)),
	}
	if p.viewport != nil {
		boardOpts = append(boardOpts, posts.WithViewport(p.viewport))
	}
	p.board = posts.NewBoard(doc, p.store, p.manifest, boardOpts...)

	p.modal = products.NewModal(doc,
		products.WithBasePath(p.basePath),
		products.WithTexts(p.store.Document),
		products.WithLogger(log),
	)
}

// Boot assembles the page. Resource failures are logged, not returned; the
// only error is a second call.
func (p *Page) Boot(ctx context.Context) error {
	p.mu.Lock()
	if p.booted {
		p.mu.Unlock()
		return ErrAlreadyBooted
	}
	p.booted = true
	p.mu.Unlock()

	p.track(p.signaler.Watch(p.doc))
	p.track(p.store.Bind())

	p.signaler.On(ctx, lifecycle.PartialsLoaded, func(context.Context) {
		if unbind, ok := p.modal.Bind(); ok {
			p.track(unbind)
		}
	})

	if _, err := p.loader.Load(ctx, p.doc); err != nil {
		p.logger.WarnContext(ctx, "partials skipped", logger.Error(err))
		p.doc.Emit(ctx, lifecycle.EventPartialsLoaded, partials.Report{})
	}

	p.setCurrentYear()
	p.doc.Emit(ctx, dom.EventContentLoaded, nil)

	if _, err := p.store.Init(ctx); err != nil {
		p.logger.ErrorContext(ctx, "no translation could be applied", logger.Error(err))
	}

	p.board.Init(ctx, p.basePath)
	return nil
}

// SetLanguage switches the page language, as a click on a switch control
// would.
func (p *Page) SetLanguage(ctx context.Context, lang i18n.Language) error {
	_, err := p.store.SetLanguage(ctx, lang)
	return err
}

// Render writes the assembled HTML.
func (p *Page) Render(w io.Writer) error {
	return p.doc.Render(w)
}

// Close detaches every listener and subscription the page registered.
func (p *Page) Close() {
	p.mu.Lock()
	unbinds := p.unbinds
	p.unbinds = nil
	p.mu.Unlock()

	for _, fn := range unbinds {
		fn()
	}
	p.board.Close()
}

func (p *Page) Document() *dom.Document       { return p.doc }
func (p *Page) Store() *i18n.Store            { return p.store }
func (p *Page) Board() *posts.Board           { return p.board }
func (p *Page) Modal() *products.Modal        { return p.modal }
func (p *Page) Signaler() *lifecycle.Signaler { return p.signaler }
func (p *Page) BasePath() string              { return p.basePath }
func (p *Page) Location() string              { return p.location }

func (p *Page) setCurrentYear() {
	if el := p.doc.ByID(CurrentYearID); el.Length() > 0 {
		el.SetText(strconv.Itoa(p.now().Year()))
	}
}

func (p *Page) track(unbind func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unbinds = append(p.unbinds, unbind)
}
