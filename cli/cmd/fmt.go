package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/archetype/lang"
)

// Fmt parses a condition expression and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical expression text (default)."`
	AST    AST    `cmd:""                    help:"Format as an indented syntax tree."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Native prints the canonical text of an expression.
type Native struct {
	Expr string `arg:"" help:"Condition expression, or '-' to read it from stdin." name:"expr"`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context, stdio Stdio) error {
	return format(ctx, stdio, f.Expr, "native", lang.Format)
}

// AST prints an expression as an indented tree of operators and operands.
type AST struct {
	Indent int `default:"2" help:"Indent width for tree output" short:"i"`

	Expr string `arg:"" help:"Condition expression, or '-' to read it from stdin." name:"expr"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context, stdio Stdio) error {
	return format(ctx, stdio, a.Expr, "ast",
		func(ctx context.Context, w io.Writer, e lang.Expression) error {
			return lang.FormatTree(ctx, w, e, a.Indent)
		})
}

// JSON prints the tree of an expression as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`

	Expr string `arg:"" help:"Condition expression, or '-' to read it from stdin." name:"expr"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context, stdio Stdio) error {
	return format(ctx, stdio, j.Expr, "json",
		func(ctx context.Context, w io.Writer, e lang.Expression) error {
			return lang.FormatJSON(ctx, w, e, j.Indent)
		})
}

// YAML prints the tree of an expression as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`

	Expr string `arg:"" help:"Condition expression, or '-' to read it from stdin." name:"expr"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context, stdio Stdio) error {
	return format(ctx, stdio, y.Expr, "yaml",
		func(ctx context.Context, w io.Writer, e lang.Expression) error {
			return lang.FormatYAML(ctx, w, e, y.Indent)
		})
}

func format(
	ctx context.Context,
	stdio Stdio,
	text, name string,
	write func(context.Context, io.Writer, lang.Expression) error,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	expr, err := parseSource(ctx, stdio, text)
	if err != nil {
		return err
	}

	if err := write(ctx, stdio.out(), expr); err != nil {
		return ErrFormat.With(slog.String("format", name)).Wrap(err)
	}

	return nil
}
