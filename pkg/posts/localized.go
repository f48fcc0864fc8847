package posts

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
)

// LocalizedText is either plain text or a set of per-language variants.
// In the manifest it is a JSON string or an object keyed by language code:
//
//	"name": "Sudtag"
//	"name": {"de": "Sudtag", "en": "Brew day"}
type LocalizedText struct {
	plain    string
	variants map[i18n.Language]string
}

// Plain returns text that reads the same in every language.
func Plain(s string) LocalizedText {
	return LocalizedText{plain: s}
}

// PerLanguage returns text with one variant per language.
func PerLanguage(variants map[i18n.Language]string) LocalizedText {
	if variants == nil {
		variants = map[i18n.Language]string{}
	}
	return LocalizedText{variants: variants}
}

// IsLocalized reports whether the text carries per-language variants.
func (t LocalizedText) IsLocalized() bool {
	return t.variants != nil
}

// Resolve picks the variant for lang, then def, then English, then the
// first non-empty variant in key order, then "". Plain text is returned as is.
func (t LocalizedText) Resolve(lang, def i18n.Language) string {
	if !t.IsLocalized() {
		return t.plain
	}
	for _, l := range []i18n.Language{lang, def, "en"} {
		if v := t.variants[l]; v != "" {
			return v
		}
	}
	for _, l := range slices.Sorted(maps.Keys(t.variants)) {
		if v := t.variants[l]; v != "" {
			return v
		}
	}
	return ""
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = LocalizedText{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Join(ErrInvalidLocalizedText, err)
		}
		*t = Plain(s)
		return nil
	case len(data) > 0 && data[0] == '{':
		var m map[i18n.Language]string
		if err := json.Unmarshal(data, &m); err != nil {
			return errors.Join(ErrInvalidLocalizedText, err)
		}
		*t = PerLanguage(m)
		return nil
	default:
		return ErrInvalidLocalizedText
	}
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.IsLocalized() {
		return json.Marshal(t.variants)
	}
	return json.Marshal(t.plain)
}
