package prefs

import (
	"context"
	"net/http"
	"time"
)

// CookieStore reads preferences from a request's cookies and writes them to
// the response. One store serves one request.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	maxAge time.Duration
	secure bool
	values map[string]string
}

// CookieOption configures a CookieStore.
type CookieOption func(*CookieStore)

// WithCookieMaxAge sets the cookie lifetime. Default one year.
func WithCookieMaxAge(d time.Duration) CookieOption {
	return func(s *CookieStore) { s.maxAge = d }
}

// WithSecureCookies marks cookies Secure.
func WithSecureCookies(secure bool) CookieOption {
	return func(s *CookieStore) { s.secure = secure }
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *CookieStore {
	s := &CookieStore{
		r:      r,
		w:      w,
		maxAge: 365 * 24 * time.Hour,
		values: map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	if v, ok := s.values[key]; ok {
		return v, true, nil
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return c.Value, true, nil
}

// Set records the value for later Gets and emits a Set-Cookie header.
// Headers must not have been written yet.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.values[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: false,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
