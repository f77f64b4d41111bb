package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/robotical/go-marty/internal/log"
)

// Serial transport defaults, matching the robot's UART (115200 8N1).
const (
	DefaultBaudRate      = 115200
	DefaultSerialTimeout = 2 * time.Second

	// serialSOF marks the start of every serial frame in both directions.
	serialSOF = 0x7E
)

// Serial executes frames over a local serial line.
//
// Wire framing: a frame is sent as
//
//	SOF | u8 nameLen | name | u8 payloadLen | payload | u8 checksum
//
// where the checksum is the XOR of every byte between SOF and the
// checksum itself. The response mirrors the layout with a status byte in
// place of the name:
//
//	SOF | u8 status | u8 payloadLen | payload | u8 checksum
type Serial struct {
	mu       sync.Mutex
	port     serial.Port
	device   string
	baudRate int
	timeout  time.Duration
}

var _ Transport = (*Serial)(nil)

// NewSerial creates an unconnected serial transport.
func NewSerial() *Serial {
	return &Serial{
		baudRate: DefaultBaudRate,
		timeout:  DefaultSerialTimeout,
	}
}

// SetBaudRate overrides the line speed. Must be called before Connect.
func (s *Serial) SetBaudRate(baud int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if baud > 0 {
		s.baudRate = baud
	}
}

// SetTimeout overrides the round-trip bound. Zero restores the default.
func (s *Serial) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		d = DefaultSerialTimeout
	}
	s.timeout = d
}

// Connect opens the serial device at location (e.g. "/dev/ttyAMA0").
func (s *Serial) Connect(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return &ConnectError{Location: location, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mode := &serial.Mode{
		BaudRate: s.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(location, mode)
	if err != nil {
		return &ConnectError{Location: location, Err: err}
	}
	if err := port.SetReadTimeout(s.timeout); err != nil {
		port.Close()
		return &ConnectError{Location: location, Err: err}
	}

	s.port = port
	s.device = location
	log.Debug("serial connected", "device", location, "baud", s.baudRate)
	return nil
}

// Execute writes the frame and blocks for the response.
func (s *Serial) Execute(f Frame) (Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return Response{}, ErrNotConnected
	}

	buf, err := encodeSerialFrame(f)
	if err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: err}
	}

	if _, err := s.port.Write(buf); err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: err}
	}

	resp, err := s.readResponse()
	if err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: err}
	}
	return resp, nil
}

// Discover enumerates the local serial device paths. Nothing attached is
// an empty result, not an error.
func (s *Serial) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ConnectError{Location: "serial enumeration", Err: err}
	}

	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, &ConnectError{Location: "serial enumeration", Err: err}
	}
	return ports, nil
}

// Close tears down the session.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	log.Debug("serial closed", "device", s.device)
	return err
}

// readResponse reads one framed response from the port. The port's read
// timeout applies per read; a silent line surfaces as ErrTimeout.
func (s *Serial) readResponse() (Response, error) {
	// SOF, status, payload length.
	header, err := s.readExact(3)
	if err != nil {
		return Response{}, err
	}
	if header[0] != serialSOF {
		return Response{}, fmt.Errorf("bad start-of-frame byte %#x", header[0])
	}

	n := int(header[2])
	rest, err := s.readExact(n + 1) // payload + checksum
	if err != nil {
		return Response{}, err
	}

	sum := header[1] ^ header[2]
	for _, b := range rest[:n] {
		sum ^= b
	}
	if sum != rest[n] {
		return Response{}, fmt.Errorf("checksum mismatch: computed %#x, got %#x", sum, rest[n])
	}

	return Response{Status: header[1], Payload: rest[:n]}, nil
}

// readExact reads exactly n bytes, treating a zero-byte read (the
// library's timeout signal) as ErrTimeout.
func (s *Serial) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		r, err := s.port.Read(buf[got:])
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, ErrTimeout
		}
		got += r
	}
	return buf, nil
}

// encodeSerialFrame serializes a frame for the serial line.
func encodeSerialFrame(f Frame) ([]byte, error) {
	if len(f.Name) > 255 {
		return nil, fmt.Errorf("command name %d bytes, max 255", len(f.Name))
	}
	if len(f.Payload) > 255 {
		return nil, fmt.Errorf("payload %d bytes, max 255", len(f.Payload))
	}

	buf := make([]byte, 0, 3+len(f.Name)+len(f.Payload)+1)
	buf = append(buf, serialSOF, byte(len(f.Name)))
	buf = append(buf, f.Name...)
	buf = append(buf, byte(len(f.Payload)))
	buf = append(buf, f.Payload...)

	var sum byte
	for _, b := range buf[1:] {
		sum ^= b
	}
	buf = append(buf, sum)
	return buf, nil
}
