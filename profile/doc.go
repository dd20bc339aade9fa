// Package profile wraps [github.com/pkg/profile] for the archetype command.
//
// Profiling support is compiled in only with the build tag [Tag]:
//
//	go build -tags pprof -o archetype .
//
// Without the tag, [Profiler.Start] always returns a no-op [Stopper] and
// [Modes] reports no modes, so callers never need build constraints of
// their own.
//
// A profiler is assembled from functional options and started once:
//
//	p := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithPath(dir),
//		profile.WithQuiet(true),
//	)
//	defer p.Start().Stop()
//
// Profiles are written to the configured directory and can be inspected
// with "go tool pprof".
package profile
