package utils

// Tree accessors for schemaless JSON sections. Decoded payloads are
// map[string]any / []any trees; these helpers keep the call sites free
// of repetitive type assertions.

// Obj returns the map stored under key, or nil if absent or not a map.
func Obj(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

// EnsureObj returns the map stored under key, creating it if absent.
func EnsureObj(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	m[key] = child
	return child
}

// Slice returns the slice stored under key, or nil if absent or not a slice.
func Slice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	child, _ := m[key].([]any)
	return child
}

// EnsureSlice returns the slice stored under key, creating it if absent.
// The returned value aliases the stored slice only until the next append,
// so callers write modified slices back with SetSlice.
func EnsureSlice(m map[string]any, key string) []any {
	if child, ok := m[key].([]any); ok {
		return child
	}
	child := []any{}
	m[key] = child
	return child
}

// SetSlice stores a slice under key.
func SetSlice(m map[string]any, key string, s []any) {
	m[key] = s
}

// StringSlice converts a decoded JSON array into []string, coercing
// each element. Non-array values yield nil.
func StringSlice(m map[string]any, key string) []string {
	raw := Slice(m, key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, ToString(v))
	}
	return out
}

// SetStringSlice stores []string under key as a generic JSON array.
func SetStringSlice(m map[string]any, key string, values []string) {
	raw := make([]any, 0, len(values))
	for _, v := range values {
		raw = append(raw, v)
	}
	m[key] = raw
}

// IndexOf returns the position of needle in values, or -1.
func IndexOf(values []string, needle string) int {
	for i, v := range values {
		if v == needle {
			return i
		}
	}
	return -1
}

// Contains reports whether needle is present in values.
func Contains(values []string, needle string) bool {
	return IndexOf(values, needle) >= 0
}

// Remove returns values without every occurrence of needle.
func Remove(values []string, needle string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != needle {
			out = append(out, v)
		}
	}
	return out
}

// InsertAt inserts value into values at index, appending when the index
// is past the end. Negative indices append as well.
func InsertAt(values []string, index int, value string) []string {
	if index < 0 || index >= len(values) {
		return append(values, value)
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values[:index]...)
	out = append(out, value)
	out = append(out, values[index:]...)
	return out
}
