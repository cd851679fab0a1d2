package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one configured target-field to source-path pair.
type Entry struct {
	Field string
	Path  string
}

// FieldMapping is the ordered set of mapping entries configured for a webhook
// endpoint. The wire format is a JSON object of {"field": "path"} pairs; the
// decoder preserves object order because later entries overwrite earlier ones
// during resolution.
type FieldMapping []Entry

// UnmarshalJSON decodes a JSON object into an ordered mapping. JSON null
// decodes to an empty mapping.
func (m *FieldMapping) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode field mapping: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("field mapping must be a JSON object")
	}

	var entries FieldMapping
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode field mapping key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("field mapping key is not a string")
		}

		var path string
		if err := dec.Decode(&path); err != nil {
			return fmt.Errorf("field mapping path for %q is not a string: %w", key, err)
		}

		entries = append(entries, Entry{Field: key, Path: path})
	}

	*m = entries
	return nil
}

// MarshalJSON encodes the mapping back to a JSON object in entry order.
func (m FieldMapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
