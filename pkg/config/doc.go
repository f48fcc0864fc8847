// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files are merged into the process environment first (existing
// variables win), then the environment is parsed into a struct annotated with
// `env` / `envDefault` tags.
//
//	type Config struct {
//		SiteDir string `env:"SITE_DIR" envDefault:"./site"`
//		Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SITEKIT_")); err != nil {
//		return err
//	}
//
// Nothing is cached between calls; callers own the loaded value.
package config
