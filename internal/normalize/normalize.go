// Package normalize converts arbitrary result values into JSON-safe plain
// values before they cross the delivery boundary.
package normalize

import (
	"encoding/json"

	"pitchboard/internal/errors"
)

// Value round-trips v through JSON so the result contains only plain values:
// maps, slices, strings, numbers, booleans, and nil. Rich types such as
// time.Time become their JSON string form (RFC3339). Applying Value twice
// yields the same result as applying it once.
func Value(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal value")
	}

	var plain any
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal value")
	}

	return plain, nil
}

// Map is like Value but asserts the normalized result is a JSON object.
// It returns an empty map for nil input.
func Map(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}

	plain, err := Value(v)
	if err != nil {
		return nil, err
	}

	m, ok := plain.(map[string]any)
	if !ok {
		return nil, errors.Errorf("normalized value is %T, not an object", plain)
	}

	return m, nil
}
