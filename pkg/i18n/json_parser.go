package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser reads translation documents in JSON, the format served under
// i18n/{lang}.json.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a JSON object. Anything other than an object is rejected.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if data == nil {
		return nil, ErrFailedToParseJSON
	}
	return Document(data), nil
}

func (p *JSONParser) Extension() string { return "json" }

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
