package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field wrapper that distinguishes three states of a patch
// field: absent (Set == false), present with null (Set && Null) and present
// with a value (Set && !Null).
//
// A JSON empty string sent for a non-string field is decoded as null, so
// `"category_id": ""` clears the reference just like `"category_id": null`.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a present Optional holding null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		o.Null = true
		return nil
	}

	if err := json.Unmarshal(trimmed, &o.Value); err != nil {
		if bytes.Equal(trimmed, []byte(`""`)) {
			o.Null = true
			return nil
		}
		return err
	}

	return nil
}

// MarshalJSON encodes absent and null values as JSON null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Get returns the value and whether it is present and non-null.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}
