// Package httpserver runs the site's HTTP handler with sane timeouts,
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and health
// probes.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, httpserver.Check{
//		Name: "redis",
//		Run:  prefs.RedisHealthcheck(client),
//	}))
//	err := srv.Run(ctx, r)
//
// Listen failures wrap ErrStart and drain failures wrap ErrShutdown.
package httpserver
