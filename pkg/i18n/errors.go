package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLDocument  = errors.New("yaml translation document must be a mapping")

	ErrUnsupportedFormat = errors.New("unsupported translation document format")
	ErrLoadDocument      = errors.New("failed to load translation document")
	ErrNoDocument        = errors.New("no translation document loaded")
)

// ErrLanguageNotSupported indicates that the requested language is not in
// the configured list of supported languages.
type ErrLanguageNotSupported struct {
	Lang Language
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
