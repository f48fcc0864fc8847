package i18n

import (
	"context"
	"strings"
)

// Parser decodes a single-language translation document.
type Parser interface {
	// Parse decodes content into a Document.
	Parse(ctx context.Context, content []byte) (Document, error)

	// Extension returns the file extension the parser reads, without a dot.
	Extension() string

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := getFileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return filename
}
