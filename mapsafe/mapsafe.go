package mapsafe

import "strings"

// Separator splits the components of a nested key such as "game/theme".
const Separator = "/"

// GetPath retrieves a typed value stored under a nested key.
// If the key is missing or holds another type, it returns the default value.
func GetPath[T any](m map[string]any, key string, defaultValue T) T {
	if val, ok := Lookup(m, key); ok {
		if v, ok := val.(T); ok {
			return v
		}
	}
	return defaultValue
}

// Lookup walks nested maps following key and returns the value stored there.
func Lookup(m map[string]any, key string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(key, Separator) {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Strings returns the string list stored at a nested key.
// A scalar string is returned as a one element list; non-string items are skipped.
func Strings(m map[string]any, key string) []string {
	val, ok := Lookup(m, key)
	if !ok {
		return nil
	}

	switch x := val.(type) {
	case string:
		return []string{x}
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Set stores value at a nested key, creating intermediate maps as needed.
// Intermediate values that are not maps are replaced.
func Set(m map[string]any, key string, value any) {
	parts := strings.Split(key, Separator)
	node := m
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = value
}
