//go:build unit || e2e

package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// AsMap turns a request DTO into a JSON object that tests can mutate field by field.
func AsMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Set overrides a JSON field; a nil value removes it.
func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
