package transport

import (
	"context"
	"sync"
	"time"
)

// Mock implements Transport for testing. It never fails to connect,
// responds synchronously from a scripted queue of responses, and records
// every call for verification.
type Mock struct {
	// ExecuteFunc is called when Execute is invoked. If nil, the next
	// scripted response (or an empty OK) is returned.
	ExecuteFunc func(f Frame) (Response, error)

	// DiscoverFunc is called when Discover is invoked. If nil, the
	// Locations field is returned.
	DiscoverFunc func(ctx context.Context) ([]string, error)

	// Locations is the scripted Discover result. Empty by default.
	Locations []string

	mu        sync.Mutex
	connected bool
	location  string
	script    []Response
	calls     []MockCall
}

// MockCall records a method invocation for verification.
type MockCall struct {
	Method string
	Frame  Frame
	Time   time.Time
}

var _ Transport = (*Mock)(nil)

// NewMock creates a mock transport with an empty script.
func NewMock() *Mock {
	return &Mock{}
}

// Script queues canned responses, consumed one per Execute in order.
// When the queue runs dry, Execute returns an empty OK response.
func (m *Mock) Script(responses ...Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// Connect records the location and marks the session connected.
// The mock never fails to connect.
func (m *Mock) Connect(ctx context.Context, location string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = true
	m.location = location
	m.calls = append(m.calls, MockCall{Method: "connect", Time: time.Now()})
	return nil
}

// Execute records the frame and replies from the script.
func (m *Mock) Execute(f Frame) (Response, error) {
	m.mu.Lock()
	if !m.connected {
		m.mu.Unlock()
		return Response{}, ErrNotConnected
	}
	m.calls = append(m.calls, MockCall{Method: "execute", Frame: f, Time: time.Now()})

	if m.ExecuteFunc != nil {
		m.mu.Unlock()
		return m.ExecuteFunc(f)
	}

	var resp Response
	if len(m.script) > 0 {
		resp = m.script[0]
		m.script = m.script[1:]
	}
	m.mu.Unlock()
	return resp, nil
}

// Discover returns the scripted locations. An empty script yields an
// empty result and no error.
func (m *Mock) Discover(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Method: "discover", Time: time.Now()})
	locations := append([]string(nil), m.Locations...)
	fn := m.DiscoverFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return locations, nil
}

// Close marks the session disconnected.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	m.calls = append(m.calls, MockCall{Method: "close", Time: time.Now()})
	return nil
}

// Connected reports the session state.
func (m *Mock) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Location returns the location passed to the last Connect.
func (m *Mock) Location() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location
}

// Calls returns a copy of the recorded call log.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// ExecutedNames returns the frame names of all execute calls, in order.
func (m *Mock) ExecutedNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for _, c := range m.calls {
		if c.Method == "execute" {
			names = append(names, c.Frame.Name)
		}
	}
	return names
}
