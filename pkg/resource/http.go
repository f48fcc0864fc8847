package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultMaxBodySize = 8 << 20

// HTTPFetcher fetches references from an HTTP origin.
type HTTPFetcher struct {
	base        *url.URL
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithMaxBodySize caps how many bytes are read per response.
func WithMaxBodySize(n int64) HTTPOption {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// NewHTTPFetcher returns a fetcher resolving root-relative references
// against baseURL (scheme and host are required).
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", ErrInvalidConfig, baseURL)
	}
	f := &HTTPFetcher{
		base:        u,
		client:      &http.Client{Timeout: 15 * time.Second},
		userAgent:   "sitekit",
		maxBodySize: defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch issues a GET. CacheBypass adds no-cache request headers.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string, mode CacheMode) ([]byte, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, errors.Join(ErrUnsupportedRef, err)
	}
	target := f.base.ResolveReference(r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if mode == CacheBypass {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Ref: ref, Code: resp.StatusCode}
	}

	return readLimited(ref, resp.Body, f.maxBodySize)
}

// readLimited reads at most limit bytes and fails instead of truncating.
func readLimited(ref string, r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrBodyTooLarge, ref, limit)
	}
	return body, nil
}
