package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a three-state field wrapper for partial updates. A field decoded
// from JSON is in exactly one of these states:
//
//   - absent:  the key was not present in the payload (leave the column alone)
//   - null:    the key was present with a JSON null (clear the column)
//   - value:   the key was present with a value (set the column)
//
// A bare pointer cannot hold the absent/null distinction, which is why update
// inputs use Optional instead of *T.
type Optional[T any] struct {
	value   T
	present bool
	valid   bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true, valid: true}
}

// Null returns an Optional that is present but holds JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true}
}

// IsSet reports whether the field appeared in the payload at all.
func (o Optional[T]) IsSet() bool {
	return o.present
}

// Value returns the held value. The second return is false when the field was
// absent or explicitly null.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.present && o.valid
}

// Ptr returns the held value as a pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.present || !o.valid {
		return nil
	}
	v := o.value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(data, []byte("null")) {
		o.valid = false
		var zero T
		o.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
