package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brauerei-andermatt/sitekit/internal/server"
	"github.com/brauerei-andermatt/sitekit/pkg/httpserver"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/prefs"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site, assembling pages per request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			fetcher, source, err := a.cfg.fetcher(ctx)
			if err != nil {
				return err
			}

			opts := []server.Option{
				server.WithSiteConfig(a.cfg.Site),
				server.WithLogger(a.log),
				server.WithSecureCookies(a.cfg.SecureCookies),
			}
			if a.cfg.Redis.ConnectionURL != "" {
				client, err := prefs.ConnectRedis(ctx, a.cfg.Redis)
				if err != nil {
					return err
				}
				defer client.Close()
				opts = append(opts, server.WithRedisPrefs(client, a.cfg.Redis.TTL))
			}

			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			a.log.InfoContext(ctx, "serving site", slog.String("source", source), logger.Count("languages", len(a.cfg.Site.Languages)))
			return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log)).Run(ctx, server.New(fetcher, opts...))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SITEKIT_HTTP_ADDR)")
	return cmd
}
