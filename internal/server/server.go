// Package server serves the site over HTTP, assembling every HTML page on
// request in the visitor's language.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/brauerei-andermatt/sitekit"
	"github.com/brauerei-andermatt/sitekit/pkg/httpserver"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/requestid"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// VisitorCookie identifies a visitor whose preferences live in Redis.
const VisitorCookie = "sitekit-visitor"

// Server is the site's http.Handler.
type Server struct {
	fetcher resource.Fetcher
	site    sitekit.Config
	logger  *slog.Logger

	redis         redis.UniversalClient
	prefsTTL      time.Duration
	secureCookies bool
	pageOpts      []sitekit.Option
	checks        []httpserver.Check

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithSiteConfig sets languages and document format of the site.
func WithSiteConfig(cfg sitekit.Config) Option {
	return func(s *Server) { s.site = cfg }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRedisPrefs keeps language choices in Redis per visitor instead of in a
// cookie, and adds Redis to the readiness probe.
func WithRedisPrefs(client redis.UniversalClient, ttl time.Duration) Option {
	return func(s *Server) {
		if client != nil {
			s.redis = client
			s.prefsTTL = ttl
			s.checks = append(s.checks, httpserver.Check{Name: "redis", Run: prefs.RedisHealthcheck(client)})
		}
	}
}

// WithSecureCookies marks preference and visitor cookies Secure.
func WithSecureCookies(secure bool) Option {
	return func(s *Server) { s.secureCookies = secure }
}

// WithPageOptions adds options to every page, e.g. a clock in tests.
func WithPageOptions(opts ...sitekit.Option) Option {
	return func(s *Server) { s.pageOpts = append(s.pageOpts, opts...) }
}

// WithReadinessCheck adds a readiness dependency.
func WithReadinessCheck(c httpserver.Check) Option {
	return func(s *Server) { s.checks = append(s.checks, c) }
}

// New builds the router serving the site read through fetcher.
func New(fetcher resource.Fetcher, opts ...Option) *Server {
	s := &Server{
		fetcher: fetcher,
		site: sitekit.Config{
			Languages:       []string{"de", "en"},
			DefaultLanguage: string(i18n.DefaultLanguage),
			DocumentFormat:  "json",
		},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(),
		middleware.RealIP,
		s.accessLog,
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(s.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(s.logger, s.checks...))

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(s.site.SupportedLanguages()...)),
			i18n.Language(s.site.DefaultLanguage),
		))
		r.Get("/*", s.serveSite)
		r.Head("/*", s.serveSite)
	})
	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request served",
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}
