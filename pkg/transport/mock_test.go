package transport

import (
	"context"
	"errors"
	"testing"
)

func TestMockLifecycle(t *testing.T) {
	m := NewMock()

	if _, err := m.Execute(Frame{Name: "hello"}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("execute before connect: got %v, want ErrNotConnected", err)
	}

	if err := m.Connect(context.Background(), "anything"); err != nil {
		t.Fatalf("mock connect failed: %v", err)
	}
	if !m.Connected() {
		t.Fatal("not connected after Connect")
	}
	if m.Location() != "anything" {
		t.Errorf("Location() = %q", m.Location())
	}

	if _, err := m.Execute(Frame{Name: "hello"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !m.Connected() {
		t.Error("execute changed session state")
	}

	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := m.Execute(Frame{Name: "hello"}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("execute after close: got %v, want ErrNotConnected", err)
	}
}

func TestMockScript(t *testing.T) {
	m := NewMock()
	m.Connect(context.Background(), "t")
	m.Script(
		Response{Status: StatusOK, Payload: []byte{0x01}},
		Response{Status: StatusError},
	)

	r1, err := m.Execute(Frame{Name: "gpio"})
	if err != nil || !r1.OK() || len(r1.Payload) != 1 {
		t.Fatalf("first scripted response: %+v, %v", r1, err)
	}
	r2, err := m.Execute(Frame{Name: "gpio"})
	if err != nil || r2.OK() {
		t.Fatalf("second scripted response: %+v, %v", r2, err)
	}

	// Script exhausted: empty OK.
	r3, err := m.Execute(Frame{Name: "gpio"})
	if err != nil || !r3.OK() || len(r3.Payload) != 0 {
		t.Fatalf("exhausted script response: %+v, %v", r3, err)
	}
}

func TestMockDiscoverEmpty(t *testing.T) {
	m := NewMock()
	locs, err := m.Discover(context.Background())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(locs) != 0 {
		t.Errorf("locations = %v, want empty", locs)
	}
}

func TestMockDiscoverScripted(t *testing.T) {
	m := NewMock()
	m.Locations = []string{"10.0.0.7:24", "10.0.0.9:24"}
	locs, err := m.Discover(context.Background())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(locs) != 2 || locs[0] != "10.0.0.7:24" {
		t.Errorf("locations = %v", locs)
	}
}

func TestMockCallLog(t *testing.T) {
	m := NewMock()
	m.Connect(context.Background(), "t")
	m.Execute(Frame{Name: "enable_safeties"})
	m.Execute(Frame{Name: "enable_motors"})

	names := m.ExecutedNames()
	if len(names) != 2 || names[0] != "enable_safeties" || names[1] != "enable_motors" {
		t.Errorf("ExecutedNames() = %v", names)
	}
}
