package partials

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/brauerei-andermatt/sitekit/pkg/async"
	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/lifecycle"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

const (
	AttrInclude = "data-include"
	AttrLoaded  = "data-partials-loaded"
	Placeholder = "__BASE__"

	EventLoaded = lifecycle.EventPartialsLoaded
)

// Report lists the outcome per fragment name, in document order. It is
// also the detail of the EventLoaded event.
type Report struct {
	Mounted []string
	Failed  []string
}

// Loader fetches and mounts fragments.
type Loader struct {
	fetcher  resource.Fetcher
	basePath string
	location string
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithBasePath sets the base path fragments live under and the value
// substituted for the __BASE__ token. Default ".".
func WithBasePath(base string) Option {
	return func(l *Loader) {
		if base != "" {
			l.basePath = base
		}
	}
}

// WithLocation sets the page location fragment paths are resolved against.
func WithLocation(location string) Option {
	return func(l *Loader) {
		l.location = location
	}
}

// WithLogger sets the logger for failed fragments.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLoader creates a Loader reading fragments through fetcher.
func NewLoader(fetcher resource.Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		basePath: ".",
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type target struct {
	name string
	el   *goquery.Selection
}

// Load mounts every fragment of page. Fragment failures are logged and
// reported, not returned; the only errors are a nil page and a page that
// was already assembled.
func (l *Loader) Load(ctx context.Context, page *dom.Document) (Report, error) {
	if page == nil {
		return Report{}, ErrNilPage
	}
	if Loaded(page) {
		return Report{}, ErrAlreadyLoaded
	}

	var targets []target
	page.Find("[" + AttrInclude + "]").Each(func(_ int, el *goquery.Selection) {
		if name, _ := el.Attr(AttrInclude); name != "" {
			targets = append(targets, target{name: name, el: el})
		}
	})

	futures := make([]*async.Future[string], len(targets))
	for i, t := range targets {
		futures[i] = async.Async(ctx, t.name, l.fetch)
	}

	var report Report
	for i, res := range async.Settle(futures...) {
		t := targets[i]
		if res.Err != nil {
			l.logger.ErrorContext(ctx, "failed to load partial",
				logger.Partial(t.name),
				logger.Path(l.Path(t.name)),
				logger.Error(res.Err),
			)
			t.el.SetHtml("")
			report.Failed = append(report.Failed, t.name)
			continue
		}
		t.el.SetHtml(res.Value)
		report.Mounted = append(report.Mounted, t.name)
	}

	page.Body().SetAttr(AttrLoaded, "true")
	l.logger.DebugContext(ctx, "partials loaded",
		logger.Count("mounted", len(report.Mounted)),
		logger.Count("failed", len(report.Failed)),
	)
	page.Emit(ctx, EventLoaded, report)
	return report, nil
}

// Path returns the reference the named fragment is fetched from.
func (l *Loader) Path(name string) string {
	return resource.Resolve(l.location, resource.Join(l.basePath, "partials", name+".html"))
}

func (l *Loader) fetch(ctx context.Context, name string) (string, error) {
	data, err := l.fetcher.Fetch(ctx, l.Path(name), resource.CacheDefault)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), Placeholder, l.basePath), nil
}

// Loaded reports whether page has already been assembled.
func Loaded(page *dom.Document) bool {
	v, _ := dom.Data(page.Body(), "partials-loaded")
	return v == "true"
}
