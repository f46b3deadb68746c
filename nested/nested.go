// Package nested provides dot-path addressing over nested string-keyed maps.
//
// Paths are dot-joined key sequences ("func.group.arg"). Absence is always
// represented by the caller's default value; no operation ever returns an
// error or panics on missing intermediate structure.
package nested

import "strings"

// Get returns the value at path, or def if any intermediate key is absent
// or the container at that level is not a mapping.
func Get(data map[string]any, path string, def any) any {
	current := any(data)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[key]
		if !ok {
			return def
		}
	}
	return current
}

// Set writes value at path, creating intermediate mappings as needed.
// A non-mapping intermediate value is replaced by a fresh mapping.
func Set(data map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	m := data
	for _, key := range keys[:len(keys)-1] {
		child, ok := m[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[key] = child
		}
		m = child
	}
	m[keys[len(keys)-1]] = value
}

// SetDefault writes value at path only when nothing is there yet.
// An explicit nil counts as absent, so a cleared value is re-defaulted.
func SetDefault(data map[string]any, path string, value any) {
	if Get(data, path, nil) == nil {
		Set(data, path, value)
	}
}
