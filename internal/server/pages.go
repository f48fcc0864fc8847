package server

import (
	"bytes"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/brauerei-andermatt/sitekit"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

// sitePath maps a request path to a site file; directories map to their
// index.html.
func sitePath(urlPath string) string {
	p := path.Clean("/" + urlPath)
	if strings.HasSuffix(urlPath, "/") || p == "/" {
		p = path.Join(p, "index.html")
	}
	return p
}

func (s *Server) serveSite(w http.ResponseWriter, r *http.Request) {
	p := sitePath(r.URL.Path)
	if path.Ext(p) == ".html" {
		s.servePage(w, r, p)
		return
	}
	s.serveFile(w, r, p)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, p string) {
	ctx := r.Context()
	lang := i18n.LanguageFromContext(ctx)

	opts := append(s.site.Options(),
		sitekit.WithPrefs(s.prefsFor(w, r)),
		sitekit.WithPreferredLanguage(lang),
		sitekit.WithLogger(s.logger),
	)
	page, err := sitekit.Open(ctx, s.fetcher, strings.TrimPrefix(p, "/"), append(opts, s.pageOpts...)...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer page.Close()

	if err := page.Boot(ctx); err != nil {
		s.fail(w, r, err)
		return
	}
	if q := i18n.FromQuery(r, "lang"); q != "" {
		if err := page.SetLanguage(ctx, q); err != nil {
			s.logger.WarnContext(ctx, "language switch rejected", logger.Lang(string(q)), logger.Error(err))
		}
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		s.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("Vary", "Cookie, Accept-Language")
	if active := page.Store().Language(); active != "" {
		h.Set("Content-Language", string(active))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, p string) {
	data, err := s.fetcher.Fetch(r.Context(), p, resource.CacheDefault)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctype := mime.TypeByExtension(path.Ext(p))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

// prefsFor picks the preference store of the visitor. With Redis the
// visitor gets an id cookie; otherwise preferences are cookies themselves.
func (s *Server) prefsFor(w http.ResponseWriter, r *http.Request) prefs.Store {
	if s.redis == nil {
		return prefs.NewCookieStore(w, r, prefs.WithSecureCookies(s.secureCookies))
	}

	visitor := ""
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			visitor = id.String()
		}
	}
	if visitor == "" {
		visitor = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     VisitorCookie,
			Value:    visitor,
			Path:     "/",
			MaxAge:   int(s.prefsTTL.Seconds()),
			HttpOnly: true,
			Secure:   s.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return prefs.NewRedisStore(s.redis, visitor, s.prefsTTL)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case resource.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, sitekit.ErrAlreadyBooted):
		status = http.StatusInternalServerError
	}
	level := slog.LevelError
	if status == http.StatusNotFound {
		level = slog.LevelDebug
	}
	s.logger.Log(r.Context(), level, "site request failed", logger.Path(r.URL.Path), logger.Error(err))
	http.Error(w, http.StatusText(status), status)
}
