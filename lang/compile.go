package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is an expression compiled to an expr-lang program. Compiling once
// and running against many variable tables avoids walking the tree on every
// evaluation.
type Program struct {
	program *vm.Program
	source  string
	names   []string // names[i] is bound to identifier v<i>
}

// Compile lowers e to an expr-lang program. Array literals and
// [OpContains] have no lowering and fail with [ErrCompile].
//
// For every tree produced by [Parse], [Program.Run] returns the same value
// as [Evaluate] with the same resolver.
func Compile(e Expression) (*Program, error) {
	c := compiler{index: make(map[string]int)}

	if err := c.emit(e); err != nil {
		return nil, err
	}

	source := c.buf.String()

	env := make(map[string]any, len(c.names))
	for i := range c.names {
		env[identifier(i)] = ""
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrCompile.
			With(slog.String("source", source)).
			Wrap(err)
	}

	return &Program{program: program, source: source, names: c.names}, nil
}

// Source returns the generated expr-lang source text.
func (p *Program) Source() string { return p.source }

// Variables returns the variable names the program reads, in order of first
// appearance.
func (p *Program) Variables() []string {
	return append([]string(nil), p.names...)
}

// Run evaluates the program, resolving each variable through resolve.
// Every variable is resolved before evaluation starts, so the first
// unresolved variable reported matches [Evaluate].
func (p *Program) Run(resolve func(name string) (string, bool)) (Value, error) {
	env := make(map[string]any, len(p.names))

	for i, name := range p.names {
		if resolve == nil {
			return Value{}, ErrUnresolvedVariable.WithToken(name)
		}

		s, ok := resolve(name)
		if !ok {
			return Value{}, ErrUnresolvedVariable.WithToken(name)
		}

		env[identifier(i)] = s
	}

	out, err := expr.Run(p.program, env)
	if err != nil {
		return Value{}, ErrEvaluate.
			With(slog.String("source", p.source)).
			Wrap(err)
	}

	switch v := out.(type) {
	case bool:
		return BoolValue(v), nil
	case string:
		return StringValue(v), nil
	default:
		return Value{}, ErrInvalidOperandType.With(
			slog.String("type", fmt.Sprintf("%T", out)),
		)
	}
}

type compiler struct {
	index map[string]int
	buf   strings.Builder
	names []string
}

func identifier(i int) string { return "v" + strconv.Itoa(i) }

func (c *compiler) variable(name string) string {
	i, ok := c.index[name]
	if !ok {
		i = len(c.names)
		c.index[name] = i
		c.names = append(c.names, name)
	}

	return identifier(i)
}

func (c *compiler) emit(e Expression) error {
	switch n := e.(type) {
	case *Literal:
		c.buf.WriteString(strconv.Quote(n.Value))

	case *Variable:
		c.buf.WriteString(c.variable(n.Name))

	case *Not:
		c.buf.WriteString("!(")

		if err := c.emit(n.Operand); err != nil {
			return err
		}

		c.buf.WriteByte(')')

	case *BinaryValue:
		if n.Op != OpEqual && n.Op != OpNotEqual {
			return ErrCompile.With(slog.String("operator", n.Op.String()))
		}

		return c.binary(n.Left, n.Op.Token(), n.Right)

	case *BinaryCondition:
		var tok string

		switch n.Op {
		case OpAnd:
			tok = "&&"
		case OpOr:
			tok = "||"
		case OpIs:
			tok = "=="
		case OpXor, OpIsNot:
			tok = "!="
		default:
			return ErrCompile.With(slog.String("operator", n.Op.String()))
		}

		return c.binary(n.Left, tok, n.Right)

	default:
		return ErrCompile.With(slog.String("type", fmt.Sprintf("%T", e)))
	}

	return nil
}

func (c *compiler) binary(left Expression, tok string, right Expression) error {
	c.buf.WriteByte('(')

	if err := c.emit(left); err != nil {
		return err
	}

	c.buf.WriteString(") " + tok + " (")

	if err := c.emit(right); err != nil {
		return err
	}

	c.buf.WriteByte(')')

	return nil
}
