package helper

import (
	"fmt"
)

// OrZero recovers a typed value from an erased one.
// A nil payload maps to the zero value of T; any other payload must already
// hold a T.
func OrZero[T any](raw any) T {
	var zero T
	if raw == nil {
		return zero
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("helper: unexpected value type: %T (want %T)", raw, zero))
	}
	return v
}

// MustRepValue asserts that raw is the payload type T owned by the named
// representation. A computation is only meaningful inside the representation
// that built it, so a mismatch here means a value escaped into a foreign
// capability set. That is a programming error, not a runtime condition, and
// it panics with the representation's name so the caller can tell which side
// of the boundary the value came from.
func MustRepValue[T any](repr string, raw any) T {
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("%s: value of type %T does not belong to this representation", repr, raw))
	}
	return v
}
