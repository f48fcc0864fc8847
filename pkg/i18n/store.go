package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// Subscriber is notified after a successful language change. A returned
// error is logged and does not affect other subscribers.
type Subscriber func(ctx context.Context, lang Language, doc Document) error

type subscription struct {
	id uint64
	fn Subscriber
}

// Store holds the active language of a page, the translation documents
// fetched so far and the language-change subscribers.
//
// Documents are fetched from {basePath}/i18n/{lang}.json, resolved against
// the page location, and cached for the lifetime of the Store. Two
// concurrent loads of the same uncached language both hit the fetcher.
type Store struct {
	page    *dom.Document
	fetcher resource.Fetcher
	prefs   prefs.Store
	parser  Parser
	logger  *slog.Logger

	basePath    string
	location    string
	defaultLang Language
	preferred   Language
	supported   []Language
	storageKey  string

	mu      sync.Mutex
	lang    Language
	current Document
	cache   map[Language]Document
	subs    []*subscription
	nextID  uint64
}

// NewStore creates a Store applying translations to page.
func NewStore(page *dom.Document, fetcher resource.Fetcher, opts ...Option) *Store {
	s := &Store{
		page:        page,
		fetcher:     fetcher,
		prefs:       prefs.NewMemoryStore(nil),
		parser:      NewJSONParser(),
		logger:      logger.Discard(),
		basePath:    ".",
		defaultLang: DefaultLanguage,
		storageKey:  StorageKey,
		cache:       make(map[Language]Document),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lang = s.defaultLang
	return s
}

// Init performs the initial load. The language is the persisted preference,
// else the preferred (detected) one, else the default. When the chosen
// language cannot be loaded the default language is tried once more.
func (s *Store) Init(ctx context.Context) (Document, error) {
	lang := s.preferred
	if stored, ok, err := s.prefs.Get(ctx, s.storageKey); err != nil {
		s.logger.WarnContext(ctx, "failed to read language preference", logger.Error(err))
	} else if ok && stored != "" {
		lang = Normalize(stored)
	}
	if lang == "" || !s.supports(lang) {
		lang = s.defaultLang
	}

	doc, err := s.SetLanguage(ctx, lang)
	if err == nil || lang == s.defaultLang {
		return doc, err
	}
	return s.SetLanguage(ctx, s.defaultLang)
}

// SetLanguage makes code the active language.
//
// An empty code selects the default language. Selecting the active language
// again re-applies the cached document without fetching or notifying.
// Otherwise the document is loaded (from cache or a cache-bypassing fetch),
// applied, committed, persisted, and subscribers are notified, except on the
// first successful load. On failure the previous language and the page stay
// unchanged and the error is returned.
func (s *Store) SetLanguage(ctx context.Context, code Language) (Document, error) {
	code = Normalize(string(code))
	if code == "" {
		code = s.defaultLang
	}
	if !s.supports(code) {
		return nil, &ErrLanguageNotSupported{Lang: code}
	}

	s.mu.Lock()
	if code == s.lang && s.current != nil {
		doc := s.current
		s.mu.Unlock()
		Apply(ctx, s.page, code, doc)
		return doc, nil
	}
	s.mu.Unlock()

	doc, err := s.load(ctx, code)
	if err != nil {
		s.logger.ErrorContext(ctx, "unable to switch language", logger.Lang(string(code)), logger.Error(err))
		return nil, err
	}

	s.mu.Lock()
	initial := s.current == nil
	s.lang = code
	s.current = doc
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	if err := s.prefs.Set(ctx, s.storageKey, string(code)); err != nil {
		s.logger.WarnContext(ctx, "failed to persist language preference", logger.Lang(string(code)), logger.Error(err))
	}

	Apply(ctx, s.page, code, doc)

	if !initial {
		for _, sub := range subs {
			s.notify(ctx, sub, code, doc)
		}
	}
	return doc, nil
}

// Reapply applies the active document again, e.g. after new fragments were
// mounted. It reports false when nothing has been loaded yet.
func (s *Store) Reapply(ctx context.Context) bool {
	s.mu.Lock()
	lang, doc := s.lang, s.current
	s.mu.Unlock()
	if doc == nil {
		return false
	}
	Apply(ctx, s.page, lang, doc)
	return true
}

// Subscribe registers fn for language changes and returns a function that
// removes it. A nil fn returns a no-op.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	sub := &subscription{id: s.nextID, fn: fn}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(x *subscription) bool { return x.id == sub.id })
	}
}

// Language returns the active language.
func (s *Store) Language() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Document returns the active translation document, or nil before the
// first successful load.
func (s *Store) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Translate resolves key in the active document.
func (s *Store) Translate(key string) (string, bool) {
	return Lookup(key, s.Document())
}

// DocumentPath returns the reference the document for lang is fetched from.
func (s *Store) DocumentPath(lang Language) string {
	name := fmt.Sprintf("%s.%s", lang, s.parser.Extension())
	return resource.Resolve(s.location, resource.Join(s.basePath, "i18n", name))
}

func (s *Store) load(ctx context.Context, lang Language) (Document, error) {
	s.mu.Lock()
	doc, ok := s.cache[lang]
	s.mu.Unlock()
	if ok {
		return doc, nil
	}

	path := s.DocumentPath(lang)
	data, err := s.fetcher.Fetch(ctx, path, resource.CacheBypass)
	if err != nil {
		return nil, errors.Join(ErrLoadDocument, err)
	}
	doc, err = s.parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Join(ErrLoadDocument, err)
	}

	s.mu.Lock()
	s.cache[lang] = doc
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "translation document loaded", logger.Lang(string(lang)), logger.Path(path))
	return doc, nil
}

func (s *Store) supports(lang Language) bool {
	return len(s.supported) == 0 || slices.Contains(s.supported, lang)
}

func (s *Store) notify(ctx context.Context, sub *subscription, lang Language, doc Document) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "i18n subscriber failed",
				logger.Lang(string(lang)),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	if err := sub.fn(ctx, lang, doc); err != nil {
		s.logger.ErrorContext(ctx, "i18n subscriber failed", logger.Lang(string(lang)), logger.Error(err))
	}
}
