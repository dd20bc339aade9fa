//go:build !pprof

package profile

import "testing"

func TestDisabled(t *testing.T) {
	if Enabled() {
		t.Error("Enabled() = true without build tag")
	}

	if m := Modes(); len(m) != 0 {
		t.Errorf("Modes() = %v, want none", m)
	}

	s := New(WithMode("cpu")).Start()
	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op stopper", s)
	}

	s.Stop()
}
