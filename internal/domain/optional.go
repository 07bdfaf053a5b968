package domain

import (
	"bytes"
	"encoding/json"
)

// FieldState describes how an optional upstream field arrived.
type FieldState uint8

const (
	// FieldAbsent means the key was missing or null.
	FieldAbsent FieldState = iota

	// FieldPresent means the value decoded into the expected type.
	FieldPresent

	// FieldMalformed means a value was sent but could not be decoded.
	FieldMalformed
)

// String returns the state name used in logs and warnings.
func (s FieldState) String() string {
	switch s {
	case FieldPresent:
		return "present"
	case FieldMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Optional holds a value received from the flight search service that may be
// absent, present, or malformed. Decoding an Optional never fails: a value of
// the wrong JSON type is kept verbatim in Raw and marked FieldMalformed.
type Optional[T any] struct {
	State FieldState
	Value T

	// Raw is the undecoded JSON text for malformed values.
	Raw string
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{State: FieldPresent, Value: v}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Malformed returns an Optional carrying raw, undecodable input.
func Malformed[T any](raw string) Optional[T] {
	return Optional[T]{State: FieldMalformed, Raw: raw}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.State == FieldPresent
}

// IsPresent reports whether the value decoded successfully.
func (o Optional[T]) IsPresent() bool {
	return o.State == FieldPresent
}

// IsAbsent reports whether the field was missing or null.
func (o Optional[T]) IsAbsent() bool {
	return o.State == FieldAbsent
}

// IsMalformed reports whether a value was sent but could not be decoded.
func (o Optional[T]) IsMalformed() bool {
	return o.State == FieldMalformed
}

// OrElse returns the value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.State == FieldPresent {
		return o.Value
	}
	return fallback
}

// IsZero lets `omitzero` drop absent fields when encoding.
func (o Optional[T]) IsZero() bool {
	return o.State == FieldAbsent
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		*o = Malformed[T](string(trimmed))
		return nil
	}
	*o = Some(v)
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null and
// malformed values re-emit their raw JSON text, so a decoded offer encodes
// back to the same shape.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	switch o.State {
	case FieldPresent:
		return json.Marshal(o.Value)
	case FieldMalformed:
		if json.Valid([]byte(o.Raw)) {
			return []byte(o.Raw), nil
		}
		return json.Marshal(o.Raw)
	default:
		return []byte("null"), nil
	}
}
