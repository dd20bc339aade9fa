// Package cmd implements the archetype subcommands.
//
// Each command is a kong command struct with a Run method. Commands receive
// the process streams through a bound [Stdio] value so they can be driven
// from tests without touching the real terminal:
//
//	var out bytes.Buffer
//	err := (&cmd.Eval{Expr: `$a == "x"`, Vars: cmd.Vars{Var: []string{"a=x"}}}).
//		Run(ctx, cmd.Stdio{Out: &out})
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
