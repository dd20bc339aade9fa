package repl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/archetype/lang"
	"github.com/ardnew/archetype/log"
)

// Vars maps variable names to their values.
type Vars = map[string]lang.Value

// cmdPrefix introduces a REPL command; any other input is an expression.
const cmdPrefix = ":"

// command names, in the order listed by :help.
var commands = []string{"set", "unset", "vars", "tree", "clear", "help", "quit"}

func helpMessage() string {
	return `
Commands:

  :set NAME VALUE   Bind $NAME to VALUE (also :set NAME=VALUE)
  :unset NAME       Remove the binding of $NAME
  :vars             List bound variables
  :tree EXPR        Print the syntax tree of EXPR
  :clear            Clear screen
  :help             Print this cruft
  :quit             Exit REPL

Usage:
  Type a condition expression to evaluate it, e.g. $os == "linux"
  Completions for $variables and :commands appear as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// action is the side effect an executed line requests from the UI.
type action int

const (
	actionNone action = iota
	actionClear
	actionQuit
)

// session holds the state of a REPL independent of the terminal UI.
type session struct {
	vars   Vars
	logger log.Logger
}

func newSession(vars Vars, logger log.Logger) *session {
	s := &session{vars: make(Vars, len(vars)), logger: logger}
	maps.Copy(s.vars, vars)

	return s
}

// names returns the sorted variable names.
func (s *session) names() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

// exec runs one line of input and returns the text to print.
func (s *session) exec(ctx context.Context, line string) (string, action, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", actionNone, nil
	}

	if rest, ok := strings.CutPrefix(line, cmdPrefix); ok {
		return s.command(ctx, rest)
	}

	out, err := s.eval(ctx, line)

	return out, actionNone, err
}

// eval parses and evaluates an expression against the bound variables.
func (s *session) eval(ctx context.Context, text string) (string, error) {
	expr, err := lang.Parse(ctx, text, lang.WithLogger(s.logger))
	if err != nil {
		return "", err
	}

	missing := slices.DeleteFunc(lang.Variables(expr), func(name string) bool {
		_, ok := s.vars[name]

		return ok
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: $%s",
			lang.ErrUnresolvedVariable, strings.Join(missing, ", $"))
	}

	result, err := lang.EvaluateValues(expr, func(name string) (lang.Value, bool) {
		v, ok := s.vars[name]

		return v, ok
	})
	if err != nil {
		return "", err
	}

	s.logger.TraceContext(ctx, "repl eval result",
		slog.String("expr", expr.String()),
		slog.Any("result", result),
	)

	return result.String(), nil
}

func (s *session) command(ctx context.Context, input string) (string, action, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	args = strings.TrimSpace(args)

	s.logger.TraceContext(ctx, "repl command",
		slog.String("command", name),
		slog.String("args", args),
	)

	switch name {
	case "q", "quit", "exit":
		return "", actionQuit, nil

	case "h", "help":
		return helpMessage(), actionNone, nil

	case "c", "clear":
		return "", actionClear, nil

	case "vars":
		return s.listVars(), actionNone, nil

	case "set":
		return "", actionNone, s.set(args)

	case "unset":
		return "", actionNone, s.unset(args)

	case "tree":
		expr, err := lang.Parse(ctx, args, lang.WithLogger(s.logger))
		if err != nil {
			return "", actionNone, err
		}

		var b strings.Builder
		if err := lang.FormatTree(ctx, &b, expr, 2); err != nil {
			return "", actionNone, err
		}

		return strings.TrimSuffix(b.String(), "\n"), actionNone, nil

	default:
		return "", actionNone, fmt.Errorf("%w: %s", ErrUnknownCommand, cmdPrefix+name)
	}
}

// set binds a variable from "NAME VALUE" or "NAME=VALUE". A leading "$" on
// the name is ignored.
func (s *session) set(args string) error {
	name, value, ok := strings.Cut(args, "=")
	if !ok || strings.ContainsAny(name, " \t") {
		name, value, ok = strings.Cut(args, " ")
	}

	name = strings.TrimPrefix(strings.TrimSpace(name), "$")
	if !ok || name == "" {
		return fmt.Errorf("%w: usage :set NAME VALUE", ErrUsage)
	}

	s.vars[name] = lang.StringValue(strings.TrimSpace(value))

	return nil
}

func (s *session) unset(args string) error {
	name := strings.TrimPrefix(args, "$")
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("%w: usage :unset NAME", ErrUsage)
	}

	delete(s.vars, name)

	return nil
}

func (s *session) listVars() string {
	if len(s.vars) == 0 {
		return "no variables bound"
	}

	var b strings.Builder

	for i, name := range s.names() {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "$%s = %s", name, formatValue(s.vars[name]))
	}

	return b.String()
}

// formatValue quotes strings and array elements the way expressions spell
// literals.
func formatValue(v lang.Value) string {
	if elems, ok := v.AsArray(); ok {
		return lang.StringArrayOf(elems...).String()
	}

	if str, ok := v.AsString(); ok {
		return lang.NewLiteral(str).String()
	}

	return v.String()
}
