package i18n

import (
	"log/slog"

	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
)

// Option configures a Store.
type Option func(*Store)

// WithBasePath sets the site base path documents are fetched under.
// Default ".".
func WithBasePath(base string) Option {
	return func(s *Store) {
		if base != "" {
			s.basePath = base
		}
	}
}

// WithLocation sets the page location fetch paths are resolved against,
// e.g. "blog/y.html" or "https://example.ch/blog/y.html".
func WithLocation(location string) Option {
	return func(s *Store) {
		s.location = location
	}
}

// WithPrefs sets where the selected language is persisted.
// Default is an in-memory store.
func WithPrefs(p prefs.Store) Option {
	return func(s *Store) {
		if p != nil {
			s.prefs = p
		}
	}
}

// WithStorageKey overrides the preference key. Default StorageKey.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.storageKey = key
		}
	}
}

// WithParser sets the document format. Default JSON.
func WithParser(p Parser) Option {
	return func(s *Store) {
		if p != nil {
			s.parser = p
		}
	}
}

// WithDefaultLanguage sets the fallback language. Default DefaultLanguage.
func WithDefaultLanguage(lang Language) Option {
	return func(s *Store) {
		if lang = Normalize(string(lang)); lang != "" {
			s.defaultLang = lang
		}
	}
}

// WithPreferredLanguage sets the detected language Init uses when nothing
// has been persisted, e.g. the outcome of Accept-Language negotiation.
func WithPreferredLanguage(lang Language) Option {
	return func(s *Store) {
		s.preferred = Normalize(string(lang))
	}
}

// WithLanguages restricts SetLanguage to langs. Without it every code is
// accepted and availability is decided by the fetch.
func WithLanguages(langs ...Language) Option {
	return func(s *Store) {
		s.supported = s.supported[:0]
		for _, l := range langs {
			if l = Normalize(string(l)); l != "" {
				s.supported = append(s.supported, l)
			}
		}
	}
}

// WithLogger sets the logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
