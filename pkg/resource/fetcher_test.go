package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brauerei-andermatt/sitekit/pkg/resource"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		base  string
		elems []string
		want  string
	}{
		{".", []string{"partials", "header.html"}, "./partials/header.html"},
		{"..", []string{"i18n/de.json"}, "../i18n/de.json"},
		{"", []string{"data", "posts.json"}, "./data/posts.json"},
		{"https://cdn.example.ch/site/", []string{"/i18n/", "en.json"}, "https://cdn.example.ch/site/i18n/en.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resource.Join(tt.base, tt.elems...))
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		location string
		ref      string
		want     string
	}{
		{"top level page", "index.html", "./data/posts.json", "/data/posts.json"},
		{"nested page", "blog/y.html", "../data/posts.json", "/data/posts.json"},
		{"empty location", "", "./partials/nav.html", "/partials/nav.html"},
		{"above root clamps", "index.html", "../../i18n/de.json", "/i18n/de.json"},
		{"absolute page url", "https://example.ch/blog/y.html", "../i18n/en.json", "https://example.ch/i18n/en.json"},
		{"absolute ref", "blog/y.html", "https://cdn.example.ch/a.json", "https://cdn.example.ch/a.json"},
		{"protocol relative ref", "blog/y.html", "//cdn.example.ch/a.json", "//cdn.example.ch/a.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resource.Resolve(tt.location, tt.ref))
		})
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, resource.IsAbsoluteURL("https://example.ch/x.jpg"))
	assert.True(t, resource.IsAbsoluteURL("//example.ch/x.jpg"))
	assert.True(t, resource.IsAbsoluteURL("data:image/png;base64,AA=="))
	assert.False(t, resource.IsAbsoluteURL("./media/x.jpg"))
	assert.False(t, resource.IsAbsoluteURL("/media/x.jpg"))
}
