// Package i18n localizes assembled pages.
//
// A Store owns the active language of one page, the translation documents it
// has fetched and the subscribers interested in language changes. Documents
// live at {basePath}/i18n/{lang}.json and are plain trees of nested objects
// addressed with dotted keys:
//
//	{"nav": {"home": "Start", "diary": "Tagebuch"}}
//
// Apply writes a document into the page. Elements opt in with attributes:
//
//	<a data-lang-key="nav.home">Start</a>
//	<img data-lang-key="hero.alt" data-lang-attr="alt">
//	<button data-lang-switch="en">EN</button>
//
// After each application an "i18n:applied" event carrying AppliedDetail is
// dispatched on the page.
//
// Basic usage:
//
//	store := i18n.NewStore(page, fetcher,
//		i18n.WithBasePath(".."),
//		i18n.WithPrefs(prefsStore),
//		i18n.WithLanguages("de", "en"),
//	)
//	unbind := store.Bind()
//	defer unbind()
//
//	if _, err := store.Init(ctx); err != nil {
//		// the page keeps its authored content
//	}
//
//	store.Subscribe(func(ctx context.Context, lang i18n.Language, doc i18n.Document) error {
//		return rerender(ctx, lang)
//	})
//
// # HTTP
//
// For server-side rendering the request language is negotiated with
// DefaultLangExtractor (query parameter, preference cookie, Accept-Language)
// and stored in the request context by Middleware.
//
// # Error Handling
//
// Load failures wrap ErrLoadDocument. Unsupported codes are reported as
// *ErrLanguageNotSupported:
//
//	var unsupported *i18n.ErrLanguageNotSupported
//	if errors.As(err, &unsupported) {
//		// fallback logic
//	}
package i18n
