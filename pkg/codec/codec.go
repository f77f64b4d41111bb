// Package codec packs command arguments into the little-endian wire
// representation the robot firmware expects, and decodes the scalar
// values that come back in responses.
//
// All Pack functions are pure: they validate the input domain and either
// return the encoded bytes (least-significant byte first) or a *RangeError.
// No bytes ever reach a transport for an out-of-domain value.
package codec

import (
	"encoding/binary"
	"math"
)

// PackUint8 packs an unsigned 8 bit int into one byte.
func PackUint8(v int) ([]byte, error) {
	if v < 0 || v > math.MaxUint8 {
		return nil, &RangeError{Value: v, Kind: "uint8", Min: 0, Max: math.MaxUint8}
	}
	return []byte{byte(v)}, nil
}

// PackInt8 packs a signed 8 bit int into one byte (two's complement).
func PackInt8(v int) ([]byte, error) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return nil, &RangeError{Value: v, Kind: "int8", Min: math.MinInt8, Max: math.MaxInt8}
	}
	return []byte{byte(int8(v))}, nil
}

// PackUint16 packs an unsigned 16 bit int into two bytes, little-endian.
func PackUint16(v int) ([]byte, error) {
	if v < 0 || v > math.MaxUint16 {
		return nil, &RangeError{Value: v, Kind: "uint16", Min: 0, Max: math.MaxUint16}
	}
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b, nil
}

// PackInt16 packs a signed 16 bit int into two bytes, little-endian.
func PackInt16(v int) ([]byte, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return nil, &RangeError{Value: v, Kind: "int16", Min: math.MinInt16, Max: math.MaxInt16}
	}
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	return b, nil
}

// PackFloat32 packs a float into four bytes, IEEE-754 single precision,
// little-endian. Values whose float32 conversion overflows to an infinity,
// as well as NaN, are rejected.
func PackFloat32(v float64) ([]byte, error) {
	if math.IsNaN(v) {
		return nil, &RangeError{Value: v, Kind: "float32"}
	}
	f := float32(v)
	if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
		return nil, &RangeError{Value: v, Kind: "float32"}
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
	return b, nil
}

// Uint16 decodes a little-endian unsigned 16 bit int from the first two
// bytes of b.
func Uint16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Int16 decodes a little-endian signed 16 bit int from the first two
// bytes of b.
func Int16(b []byte) (int16, error) {
	if len(b) < 2 {
		return 0, ErrShortBuffer
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// Float32 decodes a little-endian IEEE-754 single precision float from
// the first four bytes of b.
func Float32(b []byte) (float32, error) {
	if len(b) < 4 {
		return 0, ErrShortBuffer
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}
