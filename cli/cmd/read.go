package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/archetype/descriptor"
	"github.com/ardnew/archetype/log"
)

// Read reads an archetype descriptor and prints its tree.
type Read struct {
	Format string `default:"tree" enum:"tree,json,yaml" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                          help:"Indent width."           short:"i"`

	Source string `arg:"" default:"-" help:"Descriptor file or '-' for stdin." name:"source"`
}

// Run executes the read command.
func (r *Read) Run(ctx context.Context, stdio Stdio) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	rc, err := stdio.openSource(r.Source)
	if err != nil {
		return err
	}
	defer rc.Close()

	script, err := descriptor.ReadXML(ctx, rc,
		descriptor.WithLogger(log.With(slog.String("source", r.Source))),
	)
	if err != nil {
		return ErrReadDescriptor.
			With(slog.String("source", r.Source)).
			Wrap(err)
	}

	write := descriptor.FormatTree

	switch r.Format {
	case "json":
		write = descriptor.FormatJSON
	case "yaml":
		write = descriptor.FormatYAML
	}

	if err := write(ctx, stdio.out(), script, r.Indent); err != nil {
		return ErrFormat.With(slog.String("format", r.Format)).Wrap(err)
	}

	return nil
}
