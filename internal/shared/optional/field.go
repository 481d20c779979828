// Package optional implements tri-state update fields for PATCH/PUT
// request bodies. A field distinguishes "not sent" from "explicitly null"
// from "set to a value", which plain pointer fields cannot express.
package optional

import "encoding/json"

// State enumerates what a request said about a field.
type State int

const (
	// Unchanged means the field was absent from the request body.
	Unchanged State = iota
	// Null means the field was present and explicitly null.
	Null
	// Set means the field was present with a value.
	Set
)

// Field is a tri-state update value. The zero value is Unchanged, which
// is what encoding/json leaves behind for absent keys; UnmarshalJSON is
// only invoked for keys that are present.
type Field[T any] struct {
	state State
	value T
}

// NewSet returns a field carrying a value.
func NewSet[T any](v T) Field[T] {
	return Field[T]{state: Set, value: v}
}

// NewNull returns a field set to explicit null.
func NewNull[T any]() Field[T] {
	return Field[T]{state: Null}
}

func (f Field[T]) State() State {
	return f.state
}

func (f Field[T]) IsUnchanged() bool {
	return f.state == Unchanged
}

func (f Field[T]) IsNull() bool {
	return f.state == Null
}

func (f Field[T]) IsSet() bool {
	return f.state == Set
}

// Value returns the set value and whether one is present.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == Set
}

// ApplyPtr writes the field into a nullable destination: Set stores the
// value, Null clears it, Unchanged leaves it alone.
func (f Field[T]) ApplyPtr(dst **T) {
	switch f.state {
	case Set:
		v := f.value
		*dst = &v
	case Null:
		*dst = nil
	}
}

// Apply writes the field into a non-nullable destination on Set only.
// Null is ignored; callers that must reject null validate beforehand.
func (f Field[T]) Apply(dst *T) {
	if f.state == Set {
		*dst = f.value
	}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		f.state = Null
		var zero T
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(b, &f.value); err != nil {
		return err
	}
	f.state = Set
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state == Set {
		return json.Marshal(f.value)
	}
	return []byte("null"), nil
}
