package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Lang records a language code under the key "lang".
func Lang(code string) slog.Attr {
	return slog.String("lang", code)
}

// Path records a resource path or URL under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Partial records a fragment name under the key "partial".
func Partial(name string) slog.Attr {
	return slog.String("partial", name)
}

// Event records a DOM or lifecycle event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Container records a render container id under the key "container".
func Container(id string) slog.Attr {
	return slog.String("container", id)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Count records a quantity under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
