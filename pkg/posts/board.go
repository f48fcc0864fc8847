package posts

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// Fixed containers of the site.
const (
	ContainerLatest  = "posts-container"
	ContainerBlog    = "blog-posts"
	ContainerRelated = "related-posts"

	LatestLimit  = 3
	RelatedLimit = 3

	// EventRendered is dispatched after every render of a target.
	EventRendered = "posts:rendered"
)

// RenderedDetail is the payload of EventRendered.
type RenderedDetail struct {
	Container string
	Lang      i18n.Language
	Count     int
}

// Target is a container the board keeps rendered.
type Target struct {
	// ID is the container element id.
	ID string
	// Prefix resolves card links and images from the page's directory.
	Prefix string
	// Exclude drops the record whose slug has the same final path element.
	Exclude string
	// Limit caps the number of cards; zero means all.
	Limit int

	posts     []Record
	container *goquery.Selection
}

// Posts returns the records the target renders.
func (t *Target) Posts() []Record { return t.posts }

// Board renders post cards into registered targets and re-renders them
// whenever the store switches language. Manifests are never re-fetched for
// a re-render.
type Board struct {
	page     *dom.Document
	store    *i18n.Store
	manifest *Manifest
	renderer *Renderer
	viewport Viewport
	logger   *slog.Logger

	mu          sync.Mutex
	targets     []*Target
	scrollBound map[string]bool
	unsubscribe func()
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithRenderer replaces the card renderer.
func WithRenderer(r *Renderer) BoardOption {
	return func(b *Board) {
		if r != nil {
			b.renderer = r
		}
	}
}

// WithViewport enables scroll navigation using v for layout metrics.
func WithViewport(v Viewport) BoardOption {
	return func(b *Board) {
		b.viewport = v
	}
}

// WithBoardLogger sets the logger.
func WithBoardLogger(l *slog.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBoard creates a Board for page and subscribes it to store.
func NewBoard(page *dom.Document, store *i18n.Store, manifest *Manifest, opts ...BoardOption) *Board {
	b := &Board{
		page:        page,
		store:       store,
		manifest:    manifest,
		logger:      logger.Discard(),
		scrollBound: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.renderer == nil {
		b.renderer = NewRenderer(WithReadEntry(func(i18n.Language) (string, bool) {
			return store.Translate(ReadEntryKey)
		}))
	}
	b.unsubscribe = store.Subscribe(func(ctx context.Context, lang i18n.Language, _ i18n.Document) error {
		b.RenderAll(ctx, lang)
		return nil
	})
	return b
}

// Init fills the fixed containers present on the page from the manifest at
// {basePath}/data/posts.json, using basePath as link prefix. The related
// list excludes the entry named by body[data-post-slug]. Pages without any
// of the containers do not fetch the manifest. It returns the number of
// registered targets.
func (b *Board) Init(ctx context.Context, basePath string) int {
	present := slices.DeleteFunc([]string{ContainerLatest, ContainerBlog, ContainerRelated}, func(id string) bool {
		return b.page.ByID(id).Length() == 0
	})
	if len(present) == 0 {
		return 0
	}

	records := b.manifest.Fetch(ctx, resource.Join(basePath, "data", "posts.json"))
	current, _ := dom.Data(b.page.Body(), "post-slug")

	for _, id := range present {
		t := Target{ID: id, Prefix: basePath}
		switch id {
		case ContainerLatest:
			t.Limit = LatestLimit
		case ContainerRelated:
			t.Limit = RelatedLimit
			t.Exclude = current
		}
		if _, err := b.Register(ctx, t, records); err != nil {
			b.logger.WarnContext(ctx, "posts target skipped", logger.Container(id), logger.Error(err))
			continue
		}
		b.BindScroll(ctx, id)
	}
	return len(present)
}

// Register computes the target's records from records, renders it and
// keeps it for re-renders.
func (b *Board) Register(ctx context.Context, t Target, records []Record) (*Target, error) {
	container := b.page.ByID(t.ID)
	if container.Length() == 0 {
		return nil, ErrNoContainer
	}

	target := &t
	target.container = container
	target.posts = selectRecords(records, t.Exclude, t.Limit)

	b.mu.Lock()
	b.targets = append(b.targets, target)
	b.mu.Unlock()

	b.render(ctx, target, b.store.Language())
	return target, nil
}

// RenderAll re-renders every registered target in lang.
func (b *Board) RenderAll(ctx context.Context, lang i18n.Language) {
	b.mu.Lock()
	targets := slices.Clone(b.targets)
	b.mu.Unlock()

	for _, t := range targets {
		b.render(ctx, t, lang)
	}
}

// Targets returns the registered targets in registration order.
func (b *Board) Targets() []*Target {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.targets)
}

// Close stops following language changes.
func (b *Board) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
}

func (b *Board) render(ctx context.Context, t *Target, lang i18n.Language) {
	b.renderer.Render(t.container, t.posts, t.Prefix, lang)
	b.page.Dispatch(ctx, &dom.Event{
		Type:   EventRendered,
		Target: t.container,
		Detail: RenderedDetail{Container: t.ID, Lang: lang, Count: len(t.posts)},
	})
}

// selectRecords applies exclusion and limit. Without exclusion the result
// shares the manifest's backing array.
func selectRecords(records []Record, exclude string, limit int) []Record {
	selected := records
	if exclude != "" {
		name := path.Base(exclude)
		selected = make([]Record, 0, len(records))
		for _, r := range records {
			if path.Base(r.Slug) != name {
				selected = append(selected, r)
			}
		}
	}
	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
