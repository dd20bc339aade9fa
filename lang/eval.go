package lang

import (
	"fmt"
	"log/slog"
	"slices"
)

// Resolver supplies the value bound to a variable name, reporting false when
// the variable is unbound.
type Resolver func(name string) (Value, bool)

// Evaluate evaluates e, resolving each variable to a string through resolve.
// A nil resolve leaves every variable unresolved.
//
// Both operands of every binary node are evaluated; there is no
// short-circuiting. Evaluation fails only with [ErrUnresolvedVariable] or
// [ErrInvalidOperandType] for trees produced by [Parse].
func Evaluate(e Expression, resolve func(name string) (string, bool)) (Value, error) {
	if resolve == nil {
		return EvaluateValues(e, nil)
	}

	return EvaluateValues(e, func(name string) (Value, bool) {
		s, ok := resolve(name)
		if !ok {
			return Value{}, false
		}

		return StringValue(s), true
	})
}

// EvaluateMap evaluates e with variables bound to the entries of vars.
func EvaluateMap(e Expression, vars map[string]string) (Value, error) {
	return Evaluate(e, func(name string) (string, bool) {
		s, ok := vars[name]

		return s, ok
	})
}

// EvaluateValues evaluates e with variables bound to arbitrary values,
// including arrays and references to other variables.
func EvaluateValues(e Expression, resolve Resolver) (Value, error) {
	return evaluator{resolve: resolve}.eval(e)
}

type evaluator struct {
	resolve Resolver
}

func (ev evaluator) eval(e Expression) (Value, error) {
	switch n := e.(type) {
	case *Literal:
		return StringValue(n.Value), nil

	case *StringArray:
		return ArrayValue(n.Values...), nil

	case *Variable:
		return ev.lookup(n.Name)

	case *Not:
		b, err := ev.boolean(n.Operand, OpNot)
		if err != nil {
			return Value{}, err
		}

		return BoolValue(!b), nil

	case *BinaryValue:
		return ev.compare(n)

	case *BinaryCondition:
		return ev.condition(n)

	default:
		return Value{}, ErrInvalidExpression.With(
			slog.String("type", fmt.Sprintf("%T", e)),
		)
	}
}

// lookup resolves name, following references until a concrete value is
// found.
func (ev evaluator) lookup(name string) (Value, error) {
	var seen []string

	for {
		if ev.resolve == nil || slices.Contains(seen, name) {
			return Value{}, ErrUnresolvedVariable.WithToken(name)
		}

		v, ok := ev.resolve(name)
		if !ok {
			return Value{}, ErrUnresolvedVariable.WithToken(name)
		}

		ref, isRef := v.Ref()
		if !isRef {
			return v, nil
		}

		seen = append(seen, name)
		name = ref
	}
}

func (ev evaluator) boolean(e Expression, op Operator) (bool, error) {
	v, err := ev.eval(e)
	if err != nil {
		return false, err
	}

	b, ok := v.AsBool()
	if !ok {
		return false, ErrInvalidOperandType.
			WithToken(op.Token()).
			With(slog.String("want", KindBoolean.String()),
				slog.String("got", v.Kind().String()))
	}

	return b, nil
}

func (ev evaluator) compare(n *BinaryValue) (Value, error) {
	left, err := ev.eval(n.Left)
	if err != nil {
		return Value{}, err
	}

	right, err := ev.eval(n.Right)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case OpEqual, OpNotEqual:
		eq, err := left.Equal(right)
		if err != nil {
			return Value{}, err
		}

		return BoolValue(eq == (n.Op == OpEqual)), nil

	case OpContains:
		elems, isArray := left.AsArray()
		elem, isString := right.AsString()

		if !isArray || !isString {
			return Value{}, ErrInvalidOperandType.
				WithToken(n.Op.Token()).
				With(slog.String("left", left.Kind().String()),
					slog.String("right", right.Kind().String()))
		}

		return BoolValue(slices.Contains(elems, elem)), nil

	default:
		return Value{}, ErrInvalidExpression.With(
			slog.String("operator", n.Op.String()),
		)
	}
}

func (ev evaluator) condition(n *BinaryCondition) (Value, error) {
	left, err := ev.boolean(n.Left, n.Op)
	if err != nil {
		return Value{}, err
	}

	right, err := ev.boolean(n.Right, n.Op)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case OpAnd:
		return BoolValue(left && right), nil
	case OpOr:
		return BoolValue(left || right), nil
	case OpXor, OpIsNot:
		return BoolValue(left != right), nil
	case OpIs:
		return BoolValue(left == right), nil
	default:
		return Value{}, ErrInvalidExpression.With(
			slog.String("operator", n.Op.String()),
		)
	}
}
