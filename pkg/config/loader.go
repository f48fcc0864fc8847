package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tweaks a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	requireFile bool
	environment map[string]string
}

// WithPrefix only considers variables starting with prefix; tags are
// written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles merges the given .env files before parsing. Missing files are
// an error, unlike the implicit ".env" lookup.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.files = append(o.files, files...)
			o.requireFile = true
		}
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. Useful in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses configuration into v.
//
// Without WithEnvFiles a ".env" file in the working directory is merged when
// present and silently skipped otherwise.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		if err := loadFiles(o); err != nil {
			return err
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadFiles(o *options) error {
	if !o.requireFile {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load()
		}
		return nil
	}
	if err := godotenv.Load(o.files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
