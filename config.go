package sitekit

import (
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
)

// Config holds the site settings shared by every page.
type Config struct {
	SiteDir         string   `env:"SITE_DIR" envDefault:"./public"`
	Languages       []string `env:"LANGUAGES" envDefault:"de,en" envSeparator:","`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"de"`
	DocumentFormat  string   `env:"I18N_FORMAT" envDefault:"json"` // json or yaml
}

// Options turns the config into page options.
func (c Config) Options() []Option {
	opts := []Option{
		WithLanguages(c.SupportedLanguages()...),
		WithDefaultLanguage(i18n.Language(c.DefaultLanguage)),
	}
	if p := i18n.NewParserForFile(c.DocumentFormat); p != nil {
		opts = append(opts, WithStoreOptions(i18n.WithParser(p)))
	}
	return opts
}

// SupportedLanguages returns the configured languages.
func (c Config) SupportedLanguages() []i18n.Language {
	langs := make([]i18n.Language, 0, len(c.Languages))
	for _, l := range c.Languages {
		if code := i18n.Normalize(l); code != "" {
			langs = append(langs, code)
		}
	}
	return langs
}
