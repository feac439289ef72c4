package helper

import (
	"fmt"
)

// As asserts v to the expected type T, panicking with a descriptive error on
// mismatch. Use at erasure boundaries where the construction site guarantees
// the type and a mismatch means a bug, not a recoverable condition.
// A nil v yields the zero value of T, so nil results survive the round trip
// through the erased plane.
func As[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("unexpected type: got %T", v))
	}
	return t
}

// AsOk is the non-panicking variant of As.
// Returns the zero value and false if v does not hold a T.
func AsOk[T any](v any) (t T, ok bool) {
	if v == nil {
		return t, false
	}
	t, ok = v.(T)
	return t, ok
}
