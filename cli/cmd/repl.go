package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/archetype/cli/cmd/repl"
	"github.com/ardnew/archetype/log"
)

// Repl starts an interactive expression shell. When the input is not a
// terminal, each input line is executed in turn instead.
type Repl struct {
	Vars `embed:""`

	NoHistory bool `help:"Do not load or save input history." name:"no-history"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, stdio Stdio) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	table, err := r.Load(ctx)
	if err != nil {
		return err
	}

	cfg := repl.Config{
		In:     stdio.in(),
		Out:    stdio.out(),
		Vars:   table,
		Logger: log.With(slog.String("command", "repl")),
	}

	if !r.NoHistory {
		cfg.CacheDir = kongVar(ctx, CacheIdentifier)
	}

	return repl.Run(ctx, cfg)
}
