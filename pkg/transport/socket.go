package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robotical/go-marty/internal/log"
)

// Socket transport defaults.
const (
	// DefaultSocketPort is the robot's TCP command port, appended when
	// the location gives no port.
	DefaultSocketPort = "24"

	// DefaultSocketTimeout bounds one command round trip.
	DefaultSocketTimeout = 5 * time.Second

	// discoveryPort is the UDP port robots listen on for probes.
	discoveryPort = 24961

	// discoveryWindow is how long Discover collects replies.
	discoveryWindow = 1 * time.Second
)

// Discovery probe and reply prefixes. A reply echoes the probe's 16-byte
// token so stale replies from earlier probes are ignored.
var (
	probeMagic = []byte("MRTY?")
	replyMagic = []byte("MRTY!")
)

// Socket executes frames over a TCP connection to the robot.
//
// Wire framing: a frame is sent as
//
//	u8 nameLen | name | u16le payloadLen | payload
//
// and the response is read back as
//
//	u8 status | u16le payloadLen | payload
//
// Multi-byte lengths are little-endian to match the payload encoding.
type Socket struct {
	mu       sync.Mutex
	conn     net.Conn
	location string
	timeout  time.Duration
}

var _ Transport = (*Socket)(nil)

// NewSocket creates an unconnected socket transport.
func NewSocket() *Socket {
	return &Socket{timeout: DefaultSocketTimeout}
}

// SetTimeout overrides the round-trip bound. Must be called before
// Execute; zero restores the default.
func (s *Socket) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		d = DefaultSocketTimeout
	}
	s.timeout = d
}

// Connect dials the robot at location ("host" or "host:port").
func (s *Socket) Connect(ctx context.Context, location string) error {
	addr := location
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(location, DefaultSocketPort)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &ConnectError{Location: location, Err: err}
	}

	s.mu.Lock()
	s.conn = conn
	s.location = location
	s.mu.Unlock()

	log.Debug("socket connected", "addr", addr)
	return nil
}

// Execute writes the frame and blocks for the response.
func (s *Socket) Execute(f Frame) (Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return Response{}, ErrNotConnected
	}

	buf, err := encodeSocketFrame(f)
	if err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: err}
	}

	deadline := time.Now().Add(s.timeout)
	if err := s.conn.SetDeadline(deadline); err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: err}
	}

	if _, err := s.conn.Write(buf); err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: ioCause(err)}
	}

	resp, err := readSocketResponse(s.conn)
	if err != nil {
		return Response{}, &CommandError{Command: f.Name, Err: ioCause(err)}
	}
	return resp, nil
}

// Discover broadcasts a probe and collects replies for a bounded window.
// Locations are returned in order of first response. An empty result is
// success; a ConnectError is returned only if the probe socket itself
// cannot be opened.
func (s *Socket) Discover(ctx context.Context) ([]string, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, &ConnectError{Location: "udp broadcast", Err: err}
	}
	defer conn.Close()

	token := uuid.New()
	probe := append(append([]byte{}, probeMagic...), token[:]...)

	dest := &net.UDPAddr{IP: net.IPv4bcast, Port: discoveryPort}
	if _, err := conn.WriteToUDP(probe, dest); err != nil {
		return nil, &ConnectError{Location: dest.String(), Err: err}
	}

	deadline := time.Now().Add(discoveryWindow)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, &ConnectError{Location: dest.String(), Err: err}
	}

	var (
		found []string
		seen  = map[string]bool{}
		buf   = make([]byte, 512)
	)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			// The window closing is the normal exit.
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				break
			}
			return nil, &ConnectError{Location: dest.String(), Err: err}
		}

		loc, ok := parseDiscoveryReply(buf[:n], token)
		if !ok || seen[loc] {
			continue
		}
		seen[loc] = true
		found = append(found, loc)
		log.Debug("discovery reply", "location", loc)
	}
	return found, nil
}

// Close tears down the session.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	log.Debug("socket closed", "location", s.location)
	return err
}

// encodeSocketFrame serializes a frame for the TCP channel.
func encodeSocketFrame(f Frame) ([]byte, error) {
	if len(f.Name) > 255 {
		return nil, fmt.Errorf("command name %d bytes, max 255", len(f.Name))
	}
	if len(f.Payload) > 65535 {
		return nil, fmt.Errorf("payload %d bytes, max 65535", len(f.Payload))
	}

	buf := make([]byte, 0, 1+len(f.Name)+2+len(f.Payload))
	buf = append(buf, byte(len(f.Name)))
	buf = append(buf, f.Name...)
	buf = append(buf, byte(len(f.Payload)), byte(len(f.Payload)>>8))
	buf = append(buf, f.Payload...)
	return buf, nil
}

// readSocketResponse reads one framed response from r.
func readSocketResponse(r io.Reader) (Response, error) {
	header := make([]byte, 3)
	if _, err := io.ReadFull(r, header); err != nil {
		return Response{}, err
	}

	n := int(header[1]) | int(header[2])<<8
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Response{}, err
	}
	return Response{Status: header[0], Payload: payload}, nil
}

// parseDiscoveryReply validates a reply datagram and extracts the
// advertised location. Replies for other probe tokens are ignored.
func parseDiscoveryReply(pkt []byte, token uuid.UUID) (string, bool) {
	if len(pkt) < len(replyMagic)+16 {
		return "", false
	}
	if !bytes.Equal(pkt[:len(replyMagic)], replyMagic) {
		return "", false
	}
	if !bytes.Equal(pkt[len(replyMagic):len(replyMagic)+16], token[:]) {
		return "", false
	}
	loc := string(pkt[len(replyMagic)+16:])
	if loc == "" {
		return "", false
	}
	return loc, true
}

// ioCause maps deadline expiry to ErrTimeout, leaving other causes as-is.
func ioCause(err error) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return ErrTimeout
	}
	return err
}
