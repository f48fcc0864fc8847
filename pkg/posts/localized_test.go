package posts_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
	"github.com/brauerei-andermatt/sitekit/pkg/posts"
)

func TestLocalizedText_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text posts.LocalizedText
		lang i18n.Language
		want string
	}{
		{"plain", posts.Plain("Sudtag"), "en", "Sudtag"},
		{"active language", posts.PerLanguage(map[i18n.Language]string{"de": "Sudtag", "en": "Brew day"}), "en", "Brew day"},
		{"default language", posts.PerLanguage(map[i18n.Language]string{"de": "Sudtag", "en": "Brew day"}), "fr", "Sudtag"},
		{"english", posts.PerLanguage(map[i18n.Language]string{"en": "Brew day", "it": "Giorno"}), "fr", "Brew day"},
		{"first available", posts.PerLanguage(map[i18n.Language]string{"rm": "Di da cotta", "it": "Giorno"}), "fr", "Giorno"},
		{"empty variants skipped", posts.PerLanguage(map[i18n.Language]string{"en": "", "fr": "Brassage"}), "en", "Brassage"},
		{"nothing", posts.PerLanguage(nil), "de", ""},
		{"zero value", posts.LocalizedText{}, "de", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.text.Resolve(tt.lang, "de"))
		})
	}
}

func TestLocalizedText_JSON(t *testing.T) {
	t.Parallel()

	var rec struct {
		A posts.LocalizedText `json:"a"`
		B posts.LocalizedText `json:"b"`
		C posts.LocalizedText `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"Sudtag","b":{"de":"Sudtag","en":"Brew day"},"c":null}`), &rec))

	assert.False(t, rec.A.IsLocalized())
	assert.True(t, rec.B.IsLocalized())
	assert.Equal(t, "Brew day", rec.B.Resolve("en", "de"))
	assert.Equal(t, "", rec.C.Resolve("en", "de"))

	out, err := json.Marshal(rec.B)
	require.NoError(t, err)
	assert.JSONEq(t, `{"de":"Sudtag","en":"Brew day"}`, string(out))

	var bad posts.LocalizedText
	require.ErrorIs(t, json.Unmarshal([]byte(`42`), &bad), posts.ErrInvalidLocalizedText)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"de": 1}`), &bad), posts.ErrInvalidLocalizedText)
}
