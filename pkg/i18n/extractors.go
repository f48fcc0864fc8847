package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor determines the language of an HTTP request. An empty result
// means no preference was found.
type LangExtractor func(r *http.Request) Language

// maxLangCodeLength is the maximum allowed length for a language code
const maxLangCodeLength = 35 // RFC 5646 recommends 35 characters max

// langValidator validates and normalizes language codes
type langValidator struct {
	supportedLangs []Language
}

func newLangValidator(supportedLangs []Language) *langValidator {
	normalized := make([]Language, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalized[i] = Normalize(string(lang))
	}
	return &langValidator{supportedLangs: normalized}
}

// validate checks if a language code is valid and returns the normalized version
func (v *langValidator) validate(raw string) Language {
	if raw == "" || len(raw) > maxLangCodeLength {
		return ""
	}

	lang := Normalize(raw)
	if len(v.supportedLangs) == 0 {
		return lang
	}
	if slices.Contains(v.supportedLangs, lang) {
		return lang
	}
	// Check without region code
	if idx := strings.Index(string(lang), "-"); idx > 0 {
		if base := lang[:idx]; slices.Contains(v.supportedLangs, base) {
			return base
		}
	}
	return ""
}

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []Language
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...Language) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor creates a language extractor that checks, in order:
//  1. the query parameter (default "lang"), an explicit switch
//  2. the preference cookie (default StorageKey)
//  3. the Accept-Language header
//
// Values not in SupportedLangs are skipped when the list is set.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     StorageKey,
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	validator := newLangValidator(config.SupportedLangs)

	return func(r *http.Request) Language {
		if lang := FromQuery(r, config.QueryParamName); lang != "" {
			if validated := validator.validate(string(lang)); validated != "" {
				return validated
			}
		}

		if cookie, err := r.Cookie(config.CookieName); err == nil {
			if validated := validator.validate(strings.TrimSpace(cookie.Value)); validated != "" {
				return validated
			}
		}

		acceptLang := r.Header.Get("Accept-Language")
		if acceptLang == "" {
			return ""
		}
		if len(config.SupportedLangs) > 0 {
			return ParseAcceptLanguage(acceptLang, config.SupportedLangs, "")
		}
		first, _, _ := strings.Cut(acceptLang, ",")
		first, _, _ = strings.Cut(first, ";")
		return validator.validate(strings.TrimSpace(first))
	}
}

// FromQuery returns the normalized value of the named query parameter.
func FromQuery(r *http.Request, param string) Language {
	if param == "" {
		return ""
	}
	return Normalize(r.URL.Query().Get(param))
}
