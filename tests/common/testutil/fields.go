//go:build unit || e2e

package testutil

// Field sets a key in a DTO map, or removes it when value is nil, for
// exercising one validation rule at a time.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
