package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		doc, err := parser.Parse(context.Background(), []byte(`{"nav":{"home":"Start"},"year":2024}`))
		require.NoError(t, err)

		v, ok := i18n.Lookup("nav.home", doc)
		assert.True(t, ok)
		assert.Equal(t, "Start", v)
		v, ok = i18n.Lookup("year", doc)
		assert.True(t, ok)
		assert.Equal(t, "2024", v)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		doc, err := parser.Parse(context.Background(), []byte(`{"nav": {"home": "Start",}}`))
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
		assert.Nil(t, doc)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`["a","b"]`))
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
		_, err = parser.Parse(context.Background(), []byte(`null`))
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte(`{}`))
		require.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "json", parser.Extension())
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		content := "nav:\n  home: Start\n  diary: Tagebuch\n1: numeric key\n"
		doc, err := parser.Parse(context.Background(), []byte(content))
		require.NoError(t, err)

		v, ok := i18n.Lookup("nav.diary", doc)
		assert.True(t, ok)
		assert.Equal(t, "Tagebuch", v)
		v, ok = i18n.Lookup("1", doc)
		assert.True(t, ok)
		assert.Equal(t, "numeric key", v)
	})

	t.Run("scalar root", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("just text"))
		require.ErrorIs(t, err, i18n.ErrInvalidYAMLDocument)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("nav: [unclosed"))
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte("a: b"))
		require.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("de.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("de.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("yaml"))
	assert.Nil(t, i18n.NewParserForFile("de.toml"))
}
