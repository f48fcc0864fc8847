package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("lang", "de"), logger.Lang("de"))
	assert.Equal(t, slog.String("path", "./i18n/de.json"), logger.Path("./i18n/de.json"))
	assert.Equal(t, slog.String("partial", "header"), logger.Partial("header"))
	assert.Equal(t, slog.String("event", "partials:loaded"), logger.Event("partials:loaded"))
	assert.Equal(t, slog.String("container", "blog-posts"), logger.Container("blog-posts"))
	assert.Equal(t, slog.Int("posts", 3), logger.Count("posts", 3))
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "r1", logger.RequestID("r1").Value.Any())
}
