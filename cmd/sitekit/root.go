package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brauerei-andermatt/sitekit/pkg/config"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
	"github.com/brauerei-andermatt/sitekit/pkg/requestid"
)

// app carries state shared by the subcommands.
type app struct {
	// environ replaces the process environment when set.
	environ map[string]string

	envFiles []string
	siteDir  string

	cfg appConfig
	log *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sitekit",
		Short:         "Assemble the Brauerei Andermatt website",
		Long:          "sitekit splices partials, translations and journal cards into the site's pages,\neither once per page (render) or on every request (serve).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default: .env when present)")
	cmd.PersistentFlags().StringVar(&a.siteDir, "site", "", "site directory (overrides SITEKIT_SITE_DIR)")

	cmd.AddCommand(newRenderCmd(a), newServeCmd(a))
	return cmd
}

func (a *app) load(logOut io.Writer) error {
	opts := []config.Option{config.WithPrefix(envPrefix), config.WithEnvFiles(a.envFiles...)}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}
	if err := config.Load(&a.cfg, opts...); err != nil {
		return err
	}
	if a.siteDir != "" {
		a.cfg.Site.SiteDir = a.siteDir
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, "sitekit"),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithOutput(logOut),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if a.cfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(a.cfg.LogFormat)))
	}
	a.log = logger.New(logOpts...)
	return nil
}
