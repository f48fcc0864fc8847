package main

import (
	"context"
	"errors"
	"os"

	"github.com/brauerei-andermatt/sitekit"
	"github.com/brauerei-andermatt/sitekit/pkg/httpserver"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

const envPrefix = "SITEKIT_"

// appConfig is read from SITEKIT_* variables and optional .env files.
type appConfig struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"` // text or json, empty follows ENV

	// SiteURL fetches the site from an HTTP origin instead of SiteDir.
	SiteURL       string `env:"SITE_URL"`
	SecureCookies bool   `env:"SECURE_COOKIES"`
	// PrefsFile keeps the language chosen by render between runs.
	PrefsFile string `env:"PREFS_FILE"`

	Site  sitekit.Config
	HTTP  httpserver.Config `envPrefix:"HTTP_"`
	Redis prefs.RedisConfig
	S3    resource.S3Config
}

// prefs is where render persists the language choice.
func (c appConfig) prefs() prefs.Store {
	if c.PrefsFile != "" {
		return prefs.NewFileStore(c.PrefsFile)
	}
	return prefs.NewMemoryStore(nil)
}

var errNoSite = errors.New("sitekit: site directory not found")

// fetcher picks the site source: S3 bucket, HTTP origin, or local directory
// in that order.
func (c appConfig) fetcher(ctx context.Context) (resource.Fetcher, string, error) {
	switch {
	case c.S3.Bucket != "":
		f, err := resource.NewS3Fetcher(ctx, c.S3)
		return f, "s3://" + c.S3.Bucket + "/" + c.S3.Prefix, err
	case c.SiteURL != "":
		f, err := resource.NewHTTPFetcher(c.SiteURL)
		return f, c.SiteURL, err
	}
	if info, err := os.Stat(c.Site.SiteDir); err != nil || !info.IsDir() {
		return nil, c.Site.SiteDir, errors.Join(errNoSite, err)
	}
	return resource.NewFSFetcher(os.DirFS(c.Site.SiteDir)), c.Site.SiteDir, nil
}
