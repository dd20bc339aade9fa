//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

const enabled = true

// Modes returns the sorted list of supported profiling modes.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// settings translates p into options of the profiling library. It returns
// nil if the mode is unknown.
func (p Profiler) settings() []func(*profile.Profile) {
	fn, ok := mode[p.Mode]
	if !ok {
		return nil
	}

	set := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if p.Path != "" {
		set = append(set, profile.ProfilePath(p.Path))
	}

	if p.Quiet {
		set = append(set, profile.Quiet)
	}

	return set
}

func start(p Profiler) Stopper {
	set := p.settings()
	if set == nil {
		return ignore{}
	}

	return profile.Start(set...)
}
