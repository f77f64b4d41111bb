package transport

import (
	"bytes"
	"testing"
)

func TestEncodeSerialFrame(t *testing.T) {
	buf, err := encodeSerialFrame(Frame{Name: "stop", Payload: []byte{0x01}})
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		serialSOF,
		4, 's', 't', 'o', 'p',
		1, 0x01,
	}
	var sum byte
	for _, b := range want[1:] {
		sum ^= b
	}
	want = append(want, sum)

	if !bytes.Equal(buf, want) {
		t.Errorf("frame = % x, want % x", buf, want)
	}
}

func TestEncodeSerialFrameChecksumCoversAll(t *testing.T) {
	a, err := encodeSerialFrame(Frame{Name: "walk", Payload: []byte{0x02}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := encodeSerialFrame(Frame{Name: "walk", Payload: []byte{0x03}})
	if err != nil {
		t.Fatal(err)
	}
	if a[len(a)-1] == b[len(b)-1] {
		t.Error("checksum did not change with payload")
	}
}

func TestEncodeSerialFrameTooLarge(t *testing.T) {
	if _, err := encodeSerialFrame(Frame{Name: "x", Payload: make([]byte, 256)}); err == nil {
		t.Error("expected error for oversized payload")
	}
}

func TestSerialExecuteNotConnected(t *testing.T) {
	s := NewSerial()
	if _, err := s.Execute(Frame{Name: "hello"}); err != ErrNotConnected {
		t.Errorf("got %v, want ErrNotConnected", err)
	}
}
