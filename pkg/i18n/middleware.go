package i18n

import (
	"net/http"
)

// Middleware determines the request language with extr and stores it in the
// request context, where LanguageFromContext picks it up. An empty result
// falls back to def, or DefaultLanguage when def is empty.
func Middleware(extr LangExtractor, def Language) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if def == "" {
		def = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = def
			}
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
		})
	}
}
