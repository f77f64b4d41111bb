// Package marty is a client library for Marty the Robot. It turns
// high-level commands (walk, kick, lean, read a sensor) into the robot's
// compact binary protocol and ships them over a pluggable transport: a
// network socket, a serial line, or an in-memory test double.
//
// A robot is addressed by a connection URL of the form
// "<scheme>://<location>", e.g. "socket://marty.local" or
// "serial:///dev/ttyAMA0". Dial resolves the scheme, connects, and by
// default arms the robot (enables safety interlocks, then motors) before
// returning.
//
// A Client owns a single session and does not serialize concurrent
// callers; wrap it externally if multiple goroutines must share one.
package marty

import (
	"context"
	"strings"
	"time"

	"github.com/robotical/go-marty/internal/log"
	"github.com/robotical/go-marty/pkg/transport"
)

// Client is a connection to one robot.
type Client struct {
	url   string
	tr    transport.Transport
	armed bool
}

// settings collects Dial options before the transport is constructed.
type settings struct {
	overrides map[string]transport.Factory
	timeout   time.Duration
	arm       bool
}

// Option configures Dial.
type Option func(*settings)

// WithTransport registers a transport factory for a scheme. A built-in
// scheme is overridden; a new scheme extends the registry. The built-in
// table itself is never modified.
func WithTransport(scheme string, factory transport.Factory) Option {
	return func(s *settings) {
		if s.overrides == nil {
			s.overrides = map[string]transport.Factory{}
		}
		s.overrides[scheme] = factory
	}
}

// WithTimeout overrides the transport's command round-trip bound, for
// transports that support one.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithoutArming suppresses the automatic Arm after connect, leaving the
// safety interlocks and motors untouched until Arm is called explicitly.
func WithoutArming() Option {
	return func(s *settings) {
		s.arm = false
	}
}

// Dial connects to the robot addressed by url and, unless WithoutArming
// is given, arms it. On any failure after connecting, the session is
// closed before the error is returned.
func Dial(ctx context.Context, url string, opts ...Option) (*Client, error) {
	s := settings{arm: true}
	for _, opt := range opts {
		opt(&s)
	}

	tr, location, err := resolve(url, s.overrides)
	if err != nil {
		return nil, err
	}
	if s.timeout > 0 {
		if t, ok := tr.(interface{ SetTimeout(time.Duration) }); ok {
			t.SetTimeout(s.timeout)
		}
	}

	if err := tr.Connect(ctx, location); err != nil {
		return nil, err
	}
	log.Debug("connected", "url", url)

	c := &Client{url: url, tr: tr}
	if s.arm {
		if err := c.Arm(); err != nil {
			tr.Close()
			return nil, err
		}
	}
	return c, nil
}

// Arm enables the safety interlocks and then the motors — the two
// initialization commands the robot requires before it will move. It
// runs them exactly once; calling Arm again after success is a no-op.
func (c *Client) Arm() error {
	if c.armed {
		return nil
	}
	if _, err := c.Execute(cmdEnableSafeties); err != nil {
		return err
	}
	if _, err := c.Execute(cmdEnableMotors); err != nil {
		return err
	}
	c.armed = true
	return nil
}

// Armed reports whether the initialization sequence has completed.
func (c *Client) Armed() bool {
	return c.armed
}

// Execute assembles a frame from the command name and the ordered,
// already-encoded byte groups, ships it over the transport, and returns
// the response verbatim. Group order is significant: groups are
// concatenated exactly as given.
func (c *Client) Execute(name string, groups ...[]byte) (transport.Response, error) {
	var payload []byte
	for _, g := range groups {
		payload = append(payload, g...)
	}
	return c.tr.Execute(transport.Frame{Name: name, Payload: payload})
}

// Discover runs the transport's probe and returns reachable robot
// locations in order of first response. An empty result is not an error.
func (c *Client) Discover(ctx context.Context) ([]string, error) {
	return c.tr.Discover(ctx)
}

// Close disconnects from the robot.
func (c *Client) Close() error {
	return c.tr.Close()
}

// URL returns the connection descriptor the client was dialed with.
func (c *Client) URL() string {
	return c.url
}

// Transport exposes the underlying transport, chiefly so tests can reach
// a mock's call log.
func (c *Client) Transport() transport.Transport {
	return c.tr
}

// Discover probes for robots reachable via the url's transport without
// connecting to any of them. The location part of the url selects the
// transport only; it may be empty for schemes that probe globally, e.g.
// "socket://".
func Discover(ctx context.Context, url string, opts ...Option) ([]string, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	scheme, _, found := strings.Cut(url, "://")
	if !found || scheme == "" {
		return nil, &ConfigError{URL: url, Reason: "want <scheme>://<location>"}
	}
	factory, ok := transport.Merge(s.overrides)[scheme]
	if !ok {
		return nil, &ConfigError{URL: url, Reason: "unknown scheme " + scheme}
	}
	return factory().Discover(ctx)
}

// resolve parses the connection URL and constructs the transport for its
// scheme from the merged registry.
func resolve(url string, overrides map[string]transport.Factory) (transport.Transport, string, error) {
	scheme, location, found := strings.Cut(url, "://")
	if !found || scheme == "" || location == "" {
		return nil, "", &ConfigError{URL: url, Reason: "want <scheme>://<location>"}
	}

	factory, ok := transport.Merge(overrides)[scheme]
	if !ok {
		return nil, "", &ConfigError{URL: url, Reason: "unknown scheme " + scheme}
	}
	return factory(), location, nil
}
