package i18n

import (
	"context"
)

type languageContextKey struct{}

// WithLanguage stores the request language in the context.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored by WithLanguage, or
// DefaultLanguage.
func LanguageFromContext(ctx context.Context) Language {
	lang, _ := ctx.Value(languageContextKey{}).(Language)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
