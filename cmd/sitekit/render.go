package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brauerei-andermatt/sitekit"
	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		pagePath string
		lang     string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page in one language",
		Example: "  sitekit render --page blog/y.html --lang en --out dist/en/blog/y.html\n" +
			"  sitekit render --page index.html > index.de.html",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			fetcher, source, err := a.cfg.fetcher(ctx)
			if err != nil {
				return err
			}

			location := strings.TrimPrefix(filepath.ToSlash(pagePath), "/")
			opts := append(a.cfg.Site.Options(),
				sitekit.WithPrefs(a.cfg.prefs()),
				sitekit.WithLogger(a.log),
			)
			if lang != "" {
				opts = append(opts, sitekit.WithPreferredLanguage(i18n.Normalize(lang)))
			}

			page, err := sitekit.Open(ctx, fetcher, location, opts...)
			if err != nil {
				return fmt.Errorf("open %s from %s: %w", location, source, err)
			}
			defer page.Close()

			if err := page.Boot(ctx); err != nil {
				return err
			}
			if want := i18n.Normalize(lang); want != "" && page.Store().Language() != want {
				if err := page.SetLanguage(ctx, want); err != nil {
					return fmt.Errorf("render %s in %q: %w", location, want, err)
				}
			}

			w, closeOut, err := output(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			if err := page.Render(w); err != nil {
				_ = closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return err
			}

			a.log.InfoContext(ctx, "page rendered",
				logger.Path(location),
				logger.Lang(string(page.Store().Language())),
				slogTarget(out),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pagePath, "page", "p", "index.html", "page path relative to the site root")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language code (default: configured default language)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// output opens path for writing, creating parent directories, or falls back
// to stdout.
func output(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func slogTarget(out string) slog.Attr {
	if out == "" || out == "-" {
		return slog.String("out", "stdout")
	}
	return slog.String("out", out)
}
