//go:build !pprof

package profile

const enabled = false

// Modes returns nil when built without the pprof build tag.
var Modes = func() []string { return nil }

func start(Profiler) Stopper { return ignore{} }
