package shared

import "encoding/json"

// PatchField is a tri-state optional used in partial-update payloads. It
// distinguishes a field that was absent from the JSON body (Set=false) from
// one explicitly sent as null (Set=true, Valid=false) and from a concrete
// value (Set=true, Valid=true). Omitted fields leave the stored value
// untouched; an explicit null fails validation where the field is mandatory.
type PatchField[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Patch wraps a concrete value in a set, non-null PatchField
func Patch[T any](v T) PatchField[T] {
	return PatchField[T]{Set: true, Valid: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys
// present in the payload, so Set is always true here.
func (f *PatchField[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (f PatchField[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Get returns the value and whether a usable value was provided
func (f PatchField[T]) Get() (T, bool) {
	if !f.Set || !f.Valid {
		var zero T
		return zero, false
	}
	return f.Value, true
}

// IsNull reports whether the field was sent as an explicit null
func (f PatchField[T]) IsNull() bool {
	return f.Set && !f.Valid
}
