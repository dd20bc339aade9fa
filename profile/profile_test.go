package profile

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Profiler
	}{
		{"zero", nil, Profiler{}},
		{"nil option", []Option{nil}, Profiler{}},
		{
			"all",
			[]Option{WithMode("cpu"), WithPath("/tmp/prof"), WithQuiet(true)},
			Profiler{Mode: "cpu", Path: "/tmp/prof", Quiet: true},
		},
		{
			"last wins",
			[]Option{WithMode("cpu"), WithMode("heap")},
			Profiler{Mode: "heap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.opts...); got != tt.want {
				t.Errorf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStartWithoutMode(t *testing.T) {
	s := New(WithPath(t.TempDir())).Start()

	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op stopper", s)
	}

	s.Stop()
}
