package transport

import (
	"errors"
	"fmt"
)

// Sentinel errors for session state and bounded waits.
var (
	// ErrNotConnected is returned when Execute is called on a session
	// that is not currently connected.
	ErrNotConnected = errors.New("transport: not connected")

	// ErrTimeout is returned when no reply arrives within the
	// transport's bounded wait.
	ErrTimeout = errors.New("transport: timed out waiting for response")
)

// ConnectError reports a channel that could not be opened.
type ConnectError struct {
	// Location is the address or device the connect targeted.
	Location string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ConnectError) Error() string {
	return fmt.Sprintf("transport: connect %s: %v", e.Location, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectError) Unwrap() error {
	return e.Err
}

// CommandError reports a frame whose round trip failed at the channel
// level. The cause is ErrTimeout for an unanswered wait.
type CommandError struct {
	// Command is the frame name that was in flight.
	Command string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("transport: command %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
