package codec

import (
	"errors"
	"math"
	"testing"
)

func TestPackUint8(t *testing.T) {
	for _, v := range []int{0, 1, 127, 128, 255} {
		b, err := PackUint8(v)
		if err != nil {
			t.Fatalf("PackUint8(%d): %v", v, err)
		}
		if len(b) != 1 || int(b[0]) != v {
			t.Errorf("PackUint8(%d) = %v", v, b)
		}
	}

	for _, v := range []int{-1, 256, 1000} {
		if _, err := PackUint8(v); err == nil {
			t.Errorf("PackUint8(%d): expected range error", v)
		}
	}
}

func TestPackInt8(t *testing.T) {
	cases := []struct {
		in   int
		want byte
	}{
		{-128, 0x80},
		{-1, 0xFF},
		{0, 0x00},
		{127, 0x7F},
	}
	for _, c := range cases {
		b, err := PackInt8(c.in)
		if err != nil {
			t.Fatalf("PackInt8(%d): %v", c.in, err)
		}
		if b[0] != c.want {
			t.Errorf("PackInt8(%d) = %#x, want %#x", c.in, b[0], c.want)
		}
	}

	for _, v := range []int{-129, 128} {
		if _, err := PackInt8(v); err == nil {
			t.Errorf("PackInt8(%d): expected range error", v)
		}
	}
}

func TestPackUint16RoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 255, 256, 1500, 65535} {
		b, err := PackUint16(v)
		if err != nil {
			t.Fatalf("PackUint16(%d): %v", v, err)
		}
		if len(b) != 2 {
			t.Fatalf("PackUint16(%d): got %d bytes", v, len(b))
		}
		// Least-significant byte first.
		if int(b[0])|int(b[1])<<8 != v {
			t.Errorf("PackUint16(%d) = %v, not little-endian", v, b)
		}
		got, err := Uint16(b)
		if err != nil || int(got) != v {
			t.Errorf("Uint16(PackUint16(%d)) = %d, %v", v, got, err)
		}
	}

	for _, v := range []int{-1, 65536} {
		if _, err := PackUint16(v); err == nil {
			t.Errorf("PackUint16(%d): expected range error", v)
		}
	}
}

func TestPackInt16RoundTrip(t *testing.T) {
	for _, v := range []int{-32768, -1, 0, 1, 32767} {
		b, err := PackInt16(v)
		if err != nil {
			t.Fatalf("PackInt16(%d): %v", v, err)
		}
		got, err := Int16(b)
		if err != nil || int(got) != v {
			t.Errorf("Int16(PackInt16(%d)) = %d, %v", v, got, err)
		}
	}

	for _, v := range []int{-32769, 32768} {
		if _, err := PackInt16(v); err == nil {
			t.Errorf("PackInt16(%d): expected range error", v)
		}
	}
}

func TestPackFloat32RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.5, 7.4, -273.15, math.MaxFloat32} {
		b, err := PackFloat32(v)
		if err != nil {
			t.Fatalf("PackFloat32(%v): %v", v, err)
		}
		if len(b) != 4 {
			t.Fatalf("PackFloat32(%v): got %d bytes", v, len(b))
		}
		got, err := Float32(b)
		if err != nil || got != float32(v) {
			t.Errorf("Float32(PackFloat32(%v)) = %v, %v", v, got, err)
		}
	}
}

func TestPackFloat32Rejects(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.MaxFloat64, -math.MaxFloat64} {
		if _, err := PackFloat32(v); err == nil {
			t.Errorf("PackFloat32(%v): expected range error", v)
		}
	}

	// Infinity is representable in float32 and passes through.
	if _, err := PackFloat32(math.Inf(1)); err != nil {
		t.Errorf("PackFloat32(+Inf): %v", err)
	}
}

func TestRangeErrorDetails(t *testing.T) {
	_, err := PackUint8(300)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if re.Kind != "uint8" || re.Value != 300 || re.Min != 0 || re.Max != 255 {
		t.Errorf("unexpected RangeError fields: %+v", re)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	if _, err := Uint16([]byte{1}); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Uint16 short buffer: got %v", err)
	}
	if _, err := Int16(nil); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Int16 short buffer: got %v", err)
	}
	if _, err := Float32([]byte{1, 2, 3}); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Float32 short buffer: got %v", err)
	}
}
