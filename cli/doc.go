// Package cli contains the command line interface for archetype.
//
// # Usage
//
//	archetype eval '$flavor == "se" && $docker == "true"' -v flavor=se -v docker=true
//	archetype fmt json '!($a == "x" || $b != "y")'
//	archetype read script.xml --format yaml
//	archetype repl --vars-file build.env
//	archetype init
//
// The repl command reads one line at a time when its input is not a
// terminal, so a file of commands and expressions can be piped to it:
//
//	printf ':set os linux\n$os == "linux"\n' | archetype repl
//
// # Configuration
//
// Every global flag can be set in a YAML file at config.yaml under the user
// configuration directory (for example ~/.config/archetype/config.yaml).
// Keys are flag names, with hyphens or underscores:
//
//	log-level: debug
//	log-format: json
//
// Environment variables prefixed with ARCHETYPE_ override the file, and
// command-line flags override both. "archetype init" writes the current
// flag values to the configuration file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-output: Write log messages to a file instead of stderr
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o archetype .
//
// It adds these flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/archetype/pprof)
package cli
