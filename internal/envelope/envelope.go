// Package envelope flattens the backend's list envelopes. The backend is
// inconsistent: a collection may arrive as a raw array, wrapped under
// "data" or "content", or under an entity-named key. Decoding happens in
// one place so call-sites never branch on shape.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var wrapperKeys = []string{"data", "content"}

// Items decodes body into a flat item slice. Accepted shapes, in order:
// raw array; object wrapped under "data", "content", or one of entityKeys;
// single object (yields one item). JSON null and empty bodies yield an
// empty slice.
func Items(body []byte, entityKeys ...string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}

	if trimmed[0] == '[' {
		return decodeArray(trimmed)
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("envelope: unexpected body %q", preview(trimmed))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	keys := append(append([]string{}, wrapperKeys...), entityKeys...)
	for _, k := range keys {
		inner, ok := obj[k]
		if !ok {
			continue
		}
		innerTrimmed := bytes.TrimSpace(inner)
		if len(innerTrimmed) == 0 || bytes.Equal(innerTrimmed, []byte("null")) {
			return []json.RawMessage{}, nil
		}
		if innerTrimmed[0] == '[' {
			return decodeArray(innerTrimmed)
		}
		// wrapped single object
		return []json.RawMessage{inner}, nil
	}
	// bare single object
	return []json.RawMessage{trimmed}, nil
}

func decodeArray(b []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, nil
}

func preview(b []byte) string {
	if len(b) > 40 {
		b = b[:40]
	}
	return string(b)
}
