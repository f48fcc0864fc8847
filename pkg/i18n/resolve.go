package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveKey descends doc along the dot-separated path. It reports false
// when a segment is missing, when the walk meets a value that is not a
// mapping, or when the final value is nil. It never panics.
func ResolveKey(path string, doc Document) (any, bool) {
	if doc == nil || path == "" {
		return nil, false
	}

	var current any = map[string]any(doc)
	for part := range strings.SplitSeq(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// Lookup resolves path and formats the value as text. Only scalar values
// (strings, numbers, booleans) count as text.
func Lookup(path string, doc Document) (string, bool) {
	v, ok := ResolveKey(path, doc)
	if !ok {
		return "", false
	}
	return scalarText(v)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int, int64, int32, uint, uint64, uint32:
		return fmt.Sprint(t), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}
