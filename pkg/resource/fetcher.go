package resource

import (
	"context"
	"net/url"
	"strings"
)

// CacheMode controls intermediate caches for a single fetch.
type CacheMode int

const (
	// CacheDefault lets intermediaries serve cached copies.
	CacheDefault CacheMode = iota
	// CacheBypass asks every intermediary to revalidate.
	CacheBypass
)

// Fetcher loads the bytes behind a resolved reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref string, mode CacheMode) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, ref string, mode CacheMode) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, ref string, mode CacheMode) ([]byte, error) {
	return f(ctx, ref, mode)
}

// Join appends elems to a base path the way the page scripts build URLs:
// "{base}/{elem}". An empty base means ".".
func Join(base string, elems ...string) string {
	if base == "" {
		base = "."
	}
	out := strings.TrimRight(base, "/")
	for _, e := range elems {
		out += "/" + strings.Trim(e, "/")
	}
	return out
}

// Resolve resolves ref against the page location with URL semantics.
// Relative locations resolve to root-relative paths ("/data/posts.json");
// absolute references are returned unchanged. Unparseable input is returned
// as-is.
func Resolve(location, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() || strings.HasPrefix(ref, "//") {
		return ref
	}
	base, err := url.Parse(location)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}

// IsAbsoluteURL reports whether ref carries a scheme or is protocol-relative.
func IsAbsoluteURL(ref string) bool {
	if strings.HasPrefix(ref, "//") {
		return true
	}
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != ""
}
