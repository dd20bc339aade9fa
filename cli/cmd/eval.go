package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/archetype/lang"
	"github.com/ardnew/archetype/log"
)

// Eval parses a condition expression and prints its value.
type Eval struct {
	Vars `embed:""`

	Compile bool   `help:"Compile to an expr-lang program before evaluating." short:"c"`
	Expr    string `arg:"" help:"Condition expression, or '-' to read it from stdin." name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, stdio Stdio) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	expr, err := parseSource(ctx, stdio, e.Expr)
	if err != nil {
		return err
	}

	table, err := e.Load(ctx)
	if err != nil {
		return err
	}

	if missing := table.Missing(expr); len(missing) > 0 {
		return ErrUnresolved.
			With(slog.Any("vars", missing)).
			Wrap(errors.New("$" + strings.Join(missing, ", $")))
	}

	var result lang.Value

	if e.Compile {
		result, err = runCompiled(ctx, expr, table)
	} else {
		result, err = lang.EvaluateValues(expr, table.Resolve)
		if err != nil {
			err = ErrEvaluate.With(slog.String("expr", expr.String())).Wrap(err)
		}
	}

	if err != nil {
		return err
	}

	log.DebugContext(ctx, "expression evaluated",
		slog.String("expr", expr.String()),
		slog.Bool("compiled", e.Compile),
		slog.Any("result", result),
	)

	_, err = fmt.Fprintln(stdio.out(), result.String())

	return err
}

// parseSource parses the expression given on the command line, reading it
// from the input stream when text is "-".
func parseSource(ctx context.Context, stdio Stdio, text string) (lang.Expression, error) {
	if text == stdinSource {
		data, err := stdio.readSource(stdinSource)
		if err != nil {
			return nil, err
		}

		text = strings.TrimSpace(string(data))
	}

	expr, err := lang.Parse(ctx, text, lang.WithLogger(log.Default()))
	if err != nil {
		return nil, ErrParse.With(slog.String("expr", text)).Wrap(err)
	}

	return expr, nil
}

func runCompiled(
	ctx context.Context,
	expr lang.Expression,
	table Table,
) (lang.Value, error) {
	program, err := lang.Compile(expr)
	if err != nil {
		return lang.Value{}, ErrCompile.With(slog.String("expr", expr.String())).Wrap(err)
	}

	log.TraceContext(ctx, "expression compiled", slog.String("source", program.Source()))

	resolve, err := table.Strings(program.Variables())
	if err != nil {
		return lang.Value{}, err
	}

	result, err := program.Run(resolve)
	if err != nil {
		return lang.Value{}, ErrEvaluate.With(slog.String("expr", expr.String())).Wrap(err)
	}

	return result, nil
}
