package transport

import "testing"

func TestDefaultsCoverBuiltins(t *testing.T) {
	d := Defaults()
	for _, scheme := range []string{SchemeSocket, SchemeSerial, SchemeTest} {
		factory, ok := d[scheme]
		if !ok {
			t.Errorf("missing built-in scheme %q", scheme)
			continue
		}
		if factory() == nil {
			t.Errorf("factory for %q returned nil", scheme)
		}
	}
}

func TestMergeOverridesWithoutMutatingDefaults(t *testing.T) {
	custom := NewMock()
	merged := Merge(map[string]Factory{
		SchemeSocket: func() Transport { return custom },
		"ble":        func() Transport { return NewMock() },
	})

	if got := merged[SchemeSocket](); got != custom {
		t.Error("override for built-in scheme not applied")
	}
	if _, ok := merged["ble"]; !ok {
		t.Error("new scheme not added")
	}

	// The built-in table must be untouched.
	if _, ok := Defaults()["ble"]; ok {
		t.Error("Merge mutated the default table")
	}
	if _, isSocket := Defaults()[SchemeSocket]().(*Socket); !isSocket {
		t.Error("Merge replaced the built-in socket factory")
	}
}

func TestMergeIsCaseSensitive(t *testing.T) {
	merged := Merge(nil)
	if _, ok := merged["Socket"]; ok {
		t.Error("scheme lookup must be exact-match, case-sensitive")
	}
}
