package store

import (
	"encoding/json"
	"fmt"
)

// IDField is the key under which records carry their identifier.
const IDField = "_id"

// ToFields converts a record into its stored field map, without the
// identifier. Backends that persist JSON use it for inserts and merges.
func ToFields[T any](doc *T) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	delete(fields, IDField)
	return fields, nil
}

// FromJSON decodes a stored JSON document and sets its identifier.
func FromJSON[T any](id string, data []byte) (*T, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode stored document %s: %w", id, err)
	}
	return FromFields[T](id, fields)
}

// FromFields builds a record from a stored field map and its identifier.
func FromFields[T any](id string, fields map[string]any) (*T, error) {
	withID := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		withID[k] = v
	}
	withID[IDField] = id

	raw, err := json.Marshal(withID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document %s: %w", id, err)
	}
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return &doc, nil
}

// Merge applies fields onto stored and reports whether anything changed.
// Values are compared by their JSON encoding so that 3 and 3.0 are equal.
func Merge(stored, fields map[string]any) (map[string]any, bool, error) {
	merged := make(map[string]any, len(stored)+len(fields))
	for k, v := range stored {
		merged[k] = v
	}

	changed := false
	for k, v := range fields {
		old, ok := stored[k]
		if !ok {
			changed = true
		} else {
			same, err := sameJSON(old, v)
			if err != nil {
				return nil, false, err
			}
			if !same {
				changed = true
			}
		}
		merged[k] = v
	}
	return merged, changed, nil
}

func sameJSON(a, b any) (bool, error) {
	ra, err := json.Marshal(a)
	if err != nil {
		return false, err
	}
	rb, err := json.Marshal(b)
	if err != nil {
		return false, err
	}
	return string(ra) == string(rb), nil
}

// ToJSON encodes a record as a stored JSON document, without the identifier.
func ToJSON[T any](doc *T) ([]byte, error) {
	fields, err := ToFields(doc)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	return raw, nil
}
