// Package decode turns submitted form values into typed form structs
// through their json tags.
package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// FromValues keeps the first value of every key and decodes the result
// into T. Keys without a matching json tag are ignored.
func FromValues[T any](values url.Values) (T, error) {
	flat := make(map[string]any, len(values))
	for key, v := range values {
		if len(v) > 0 {
			flat[key] = v[0]
		}
	}
	return FromMap[T](flat)
}

// FromMap decodes data into T. Numbers keep their textual form so large
// identifiers survive the round trip.
func FromMap[T any](data map[string]any) (T, error) {
	var result T

	b, err := json.Marshal(data)
	if err != nil {
		return result, fmt.Errorf("encode form: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode form: %w", err)
	}
	return result, nil
}
