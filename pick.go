package statejar

import (
	json "github.com/goccy/go-json"
)

// PickCookies returns the sparse subset of schema-recognized entries present
// in the jar with syntactically valid JSON values. Absent names and malformed
// payloads are silently skipped; the result never contains non-schema keys.
// It is intended to seed a Store's initial cache.
func PickCookies(jar JarReader, s Schema) map[string]any {
	out := map[string]any{}
	for _, key := range Keys(s) {
		raw, ok := jar.Get(EncodeCookieName(key))
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			continue
		}
		out[key] = v
	}
	return out
}
