package sitekit

import (
	"log/slog"
	"time"

	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/posts"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
)

// Option configures a Page.
type Option func(*Page)

// WithLocation sets the page's own path or URL. Resource paths are resolved
// against it.
func WithLocation(location string) Option {
	return func(p *Page) { p.location = location }
}

// WithBasePath overrides body[data-base-path].
func WithBasePath(base string) Option {
	return func(p *Page) {
		if base != "" {
			p.basePath = base
		}
	}
}

// WithPrefs sets where the language choice is persisted.
func WithPrefs(s prefs.Store) Option {
	return func(p *Page) {
		if s != nil {
			p.prefs = s
		}
	}
}

// WithLanguages restricts the selectable languages.
func WithLanguages(langs ...i18n.Language) Option {
	return func(p *Page) {
		if len(langs) > 0 {
			p.storeOpts = append(p.storeOpts, i18n.WithLanguages(langs...))
		}
	}
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang i18n.Language) Option {
	return func(p *Page) {
		if lang != "" {
			p.defaultLang = lang
			p.storeOpts = append(p.storeOpts, i18n.WithDefaultLanguage(lang))
		}
	}
}

// WithPreferredLanguage sets the detected language used when nothing was
// persisted.
func WithPreferredLanguage(lang i18n.Language) Option {
	return func(p *Page) {
		p.storeOpts = append(p.storeOpts, i18n.WithPreferredLanguage(lang))
	}
}

// WithStoreOptions passes extra options to the translation store.
func WithStoreOptions(opts ...i18n.Option) Option {
	return func(p *Page) {
		p.storeOpts = append(p.storeOpts, opts...)
	}
}

// WithViewport enables scroll navigation for the posts containers.
func WithViewport(v posts.Viewport) Option {
	return func(p *Page) { p.viewport = v }
}

// WithClock sets the time source for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(p *Page) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the logger handed to every component.
func WithLogger(l *slog.Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}
