package i18n

// Language is a short language code such as "de" or "en".
type Language string

func (l Language) String() string { return string(l) }

// Document is a parsed translation document: a tree of nested maps with
// string (or other scalar) leaves, addressed by dotted key paths.
type Document map[string]any

const (
	// DefaultLanguage is used when neither a persisted nor a detected
	// preference exists.
	DefaultLanguage Language = "de"

	// StorageKey is the preference key holding the last selected language.
	StorageKey = "brauerei-language"
)
