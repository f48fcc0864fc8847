package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

const maxIDLength = 128

// Option configures Middleware.
type Option func(*options)

type options struct {
	trustHeader bool
	generate    func() string
}

// WithTrustHeader controls whether a well-formed incoming X-Request-ID is
// reused. Enabled by default; disable when clients reach the server without
// a proxy in front.
func WithTrustHeader(trust bool) Option {
	return func(o *options) { o.trustHeader = trust }
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// Middleware assigns every request an id, stores it in the request context
// and echoes it in the response header.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := options{trustHeader: true, generate: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if o.trustHeader {
				if v := r.Header.Get(Header); valid(v) {
					id = v
				}
			}
			if id == "" {
				id = o.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// valid accepts 1 to 128 characters of [A-Za-z0-9_-].
func valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
