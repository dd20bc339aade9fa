package lang

//go:generate go tool stringer --linecomment --type Operator --output operator_string.go

import (
	"slices"
	"strings"
)

// Operator identifies the operation applied by a composite [Expression].
//
// The textual operators "==" and "!=" map to two distinct pairs of
// operators: [OpEqual] and [OpNotEqual] compare values, while [OpIs] and
// [OpIsNot] compare conditions. The parser chooses between them from the
// shape of the left operand.
type Operator int

const (
	OpNone     Operator = iota // NONE
	OpAnd                      // AND
	OpOr                       // OR
	OpXor                      // XOR
	OpIs                       // IS
	OpIsNot                    // IS_NOT
	OpEqual                    // EQUAL
	OpNotEqual                 // NOT_EQUAL
	OpContains                 // CONTAINS
	OpNot                      // NOT
)

// Token returns the text form of the operator.
func (op Operator) Token() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpXor:
		return "^"
	case OpIs, OpEqual:
		return "=="
	case OpIsNot, OpNotEqual:
		return "!="
	case OpContains:
		return "contains"
	case OpNot:
		return "!"
	default:
		return ""
	}
}

// IsCondition reports whether op combines two boolean operands.
func (op Operator) IsCondition() bool {
	switch op {
	case OpAnd, OpOr, OpXor, OpIs, OpIsNot:
		return true
	default:
		return false
	}
}

// IsComparison reports whether op compares two value operands.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEqual, OpNotEqual, OpContains:
		return true
	default:
		return false
	}
}

// Expression is a node of a parsed expression tree.
//
// The concrete types are [*Literal], [*Variable], [*StringArray], [*Not],
// [*BinaryCondition], and [*BinaryValue]. Nodes are never modified after
// construction.
type Expression interface {
	// String returns the canonical text of the expression. Parsing the
	// result yields a structurally identical tree.
	String() string

	expression()
}

// Literal is a quoted string constant.
type Literal struct {
	Value string
}

// Variable is a reference to a named value supplied at evaluation time.
type Variable struct {
	Name string
}

// StringArray is a constant list of strings. The text grammar has no syntax
// for arrays, so these are only built programmatically.
type StringArray struct {
	Values []string
}

// Not negates a condition.
type Not struct {
	Operand Expression
}

// BinaryCondition combines two conditions with [OpAnd], [OpOr], [OpXor],
// [OpIs], or [OpIsNot].
type BinaryCondition struct {
	Left  Expression
	Right Expression
	Op    Operator
}

// BinaryValue compares two values with [OpEqual], [OpNotEqual], or
// [OpContains].
type BinaryValue struct {
	Left  Expression
	Right Expression
	Op    Operator
}

func (*Literal) expression()         {}
func (*Variable) expression()        {}
func (*StringArray) expression()     {}
func (*Not) expression()             {}
func (*BinaryCondition) expression() {}
func (*BinaryValue) expression()     {}

// IsValue reports whether e is value-shaped: a literal, variable, or array.
// Every other expression is condition-shaped.
func IsValue(e Expression) bool {
	switch e.(type) {
	case *Literal, *Variable, *StringArray:
		return true
	default:
		return false
	}
}

// NewLiteral returns a string literal.
func NewLiteral(value string) *Literal { return &Literal{Value: value} }

// NewVariable returns a variable reference.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

// StringArrayOf returns an array literal holding a copy of values.
func StringArrayOf(values ...string) *StringArray {
	return &StringArray{Values: slices.Clone(values)}
}

// Negate returns the logical negation of a condition.
func Negate(operand Expression) *Not { return &Not{Operand: operand} }

// And returns left && right.
func And(left, right Expression) *BinaryCondition {
	return &BinaryCondition{Op: OpAnd, Left: left, Right: right}
}

// Or returns left || right.
func Or(left, right Expression) *BinaryCondition {
	return &BinaryCondition{Op: OpOr, Left: left, Right: right}
}

// Xor returns left ^ right, true when exactly one side is true.
func Xor(left, right Expression) *BinaryCondition {
	return &BinaryCondition{Op: OpXor, Left: left, Right: right}
}

// Is returns a condition that holds when left and right are equivalent.
func Is(left, right Expression) *BinaryCondition {
	return &BinaryCondition{Op: OpIs, Left: left, Right: right}
}

// IsNot returns a condition that holds when left and right differ.
func IsNot(left, right Expression) *BinaryCondition {
	return &BinaryCondition{Op: OpIsNot, Left: left, Right: right}
}

// Equal returns left == right for value operands.
func Equal(left, right Expression) *BinaryValue {
	return &BinaryValue{Op: OpEqual, Left: left, Right: right}
}

// NotEqual returns left != right for value operands.
func NotEqual(left, right Expression) *BinaryValue {
	return &BinaryValue{Op: OpNotEqual, Left: left, Right: right}
}

// NewContains returns a condition that holds when the array operand
// contains the string operand.
func NewContains(array, element Expression) *BinaryValue {
	return &BinaryValue{Op: OpContains, Left: array, Right: element}
}

// Variables returns the distinct variable names referenced by e, in order of
// first appearance from left to right.
func Variables(e Expression) []string {
	var names []string

	walk(e, func(n Expression) {
		if v, ok := n.(*Variable); ok && !slices.Contains(names, v.Name) {
			names = append(names, v.Name)
		}
	})

	return names
}

// walk visits e and its descendants depth-first, left before right.
func walk(e Expression, visit func(Expression)) {
	if e == nil {
		return
	}

	visit(e)

	switch n := e.(type) {
	case *Not:
		walk(n.Operand, visit)

	case *BinaryCondition:
		walk(n.Left, visit)
		walk(n.Right, visit)

	case *BinaryValue:
		walk(n.Left, visit)
		walk(n.Right, visit)
	}
}

func (l *Literal) String() string {
	return `"` + strings.ReplaceAll(l.Value, `"`, `\"`) + `"`
}

func (v *Variable) String() string { return "$" + v.Name }

func (a *StringArray) String() string {
	quoted := make([]string, len(a.Values))
	for i, s := range a.Values {
		quoted[i] = (&Literal{Value: s}).String()
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

func (n *Not) String() string { return "!(" + n.Operand.String() + ")" }

func (c *BinaryCondition) String() string {
	return operand(c.Left) + " " + c.Op.Token() + " " + operand(c.Right)
}

func (v *BinaryValue) String() string {
	return operand(v.Left) + " " + v.Op.Token() + " " + operand(v.Right)
}

// operand prints a child of a binary node, grouping nested conditions so the
// printed form keeps its shape when parsed again.
func operand(e Expression) string {
	if e == nil {
		return ""
	}

	if _, ok := e.(*BinaryCondition); ok {
		return "(" + e.String() + ")"
	}

	return e.String()
}
