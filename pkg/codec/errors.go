package codec

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a decode helper is given fewer bytes
// than the target width requires.
var ErrShortBuffer = errors.New("codec: short buffer")

// RangeError reports a value that does not fit its target wire width.
type RangeError struct {
	// Value is the offending input.
	Value any

	// Kind names the attempted width/signedness, e.g. "uint8", "int16".
	Kind string

	// Min and Max bound the valid domain for integer kinds.
	// Both are zero for "float32".
	Min, Max int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Kind == "float32" {
		return fmt.Sprintf("codec: value %v not representable as float32", e.Value)
	}
	return fmt.Sprintf("codec: value %v out of range for %s [%d, %d]", e.Value, e.Kind, e.Min, e.Max)
}
