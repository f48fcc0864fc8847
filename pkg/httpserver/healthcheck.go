package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Check is a named readiness dependency, e.g. the preference store.
type Check struct {
	Name string
	Run  func(context.Context) error
}

// HealthCheckHandler answers liveness and readiness probes.
//
// Without checks it always responds 200 "ALIVE". With checks every one runs
// against the request context: 200 "READY" when all pass, 503 "NOT_READY"
// naming the first failing check otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	log = logger.OrDiscard(log)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, c := range checks {
			if c.Run == nil {
				continue
			}
			if err := c.Run(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					slog.String("check", c.Name),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY: " + c.Name))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
