package transport

// Built-in scheme names.
const (
	SchemeSocket = "socket"
	SchemeSerial = "serial"
	SchemeTest   = "test"
)

// Defaults returns a fresh copy of the built-in scheme table. Callers may
// modify the returned map freely; the built-ins themselves are never
// mutated.
func Defaults() map[string]Factory {
	return map[string]Factory{
		SchemeSocket: func() Transport { return NewSocket() },
		SchemeSerial: func() Transport { return NewSerial() },
		SchemeTest:   func() Transport { return NewMock() },
	}
}

// Merge returns the built-in scheme table overlaid with overrides.
// An override for a built-in scheme replaces it; new schemes extend the
// table. Neither input map is mutated, and scheme matching is exact and
// case-sensitive.
func Merge(overrides map[string]Factory) map[string]Factory {
	merged := Defaults()
	for scheme, factory := range overrides {
		merged[scheme] = factory
	}
	return merged
}
