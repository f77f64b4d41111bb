// Package transport provides the channels a command frame travels over:
// a TCP socket, a serial line, or an in-memory test double.
//
// All variants implement the Transport interface. A transport owns one
// session at a time; the session moves Disconnected → Connected → and back
// to Disconnected on Close. Execute is only valid while Connected and
// blocks the caller for the full round trip. Discover probes for reachable
// robots and is valid in any state, since it runs on its own channel.
//
// Transports do not retry and do not interpret responses beyond framing;
// failures surface to the caller as-is.
package transport

import "context"

// Frame is one command on the wire: a name plus its ordered,
// already-encoded argument bytes. Frames are assembled by the client
// layer; transports only frame and ship them.
type Frame struct {
	Name    string
	Payload []byte
}

// Response statuses returned by the robot.
const (
	StatusOK    = 0x00
	StatusError = 0x01
)

// Response is the robot's reply to one executed frame: a status byte and
// the raw payload bytes. Decoding payload scalars is the caller's job.
type Response struct {
	Status  byte
	Payload []byte
}

// OK reports whether the robot accepted the command.
func (r Response) OK() bool {
	return r.Status == StatusOK
}

// Transport is a channel for executing command frames against one robot.
type Transport interface {
	// Connect establishes the session with the robot at location.
	// The location format is transport-specific: "host[:port]" for
	// sockets, a device path for serial lines, an arbitrary token for
	// the test double.
	Connect(ctx context.Context, location string) error

	// Execute writes the frame and blocks until a response arrives,
	// the transport's bounded wait expires (ErrTimeout), or the channel
	// fails. Valid only while connected.
	Execute(f Frame) (Response, error)

	// Discover probes for reachable robots and returns their locations
	// in order of first response. An empty result is not an error.
	Discover(ctx context.Context) ([]string, error)

	// Close tears down the session. The transport can be reconnected
	// with a fresh Connect.
	Close() error
}

// Factory constructs an unconnected transport instance for a scheme.
type Factory func() Transport
