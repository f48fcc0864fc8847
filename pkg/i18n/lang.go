package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers while
// preventing memory exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage negotiates an Accept-Language header against the
// supported languages. Quality values are honoured and regional variants
// match their base language (de-CH matches de). It returns def when the
// header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supported []Language, def Language) Language {
	if header == "" || len(supported) == 0 {
		return def
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return def
	}

	tags := make([]language.Tag, 0, len(supported))
	langs := make([]Language, 0, len(supported))
	for _, l := range supported {
		tag, err := language.Parse(string(l))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		langs = append(langs, l)
	}
	if len(tags) == 0 {
		return def
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return def
	}
	return langs[idx]
}

// Normalize lower-cases and trims a language code.
func Normalize(code string) Language {
	return Language(strings.ToLower(strings.TrimSpace(code)))
}
