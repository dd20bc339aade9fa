package lang

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses text into an expression tree.
//
// The scan is a single left-to-right pass without a precedence table: each
// operator applies eagerly to the operand most recently completed in the
// current scope, so "A && B || C" groups as "(A && B) || C". Parentheses
// open a new scope, and "!(" opens a negated scope.
//
// Errors are [*Error] values positioned at the offending byte offset.
func Parse(ctx context.Context, text string, opts ...Option) (Expression, error) {
	o := makeOptions(opts...)

	p := &parser{
		input: text,
		stack: []*scope{{kind: scopeRoot}},
	}

	expr, err := p.parse()
	if err != nil {
		o.logger.TraceContext(ctx, "parse failed",
			slog.String("input", text),
			slog.Any("error", err))

		return nil, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.String("input", text),
		slog.String("root", nodeName(expr)))

	return expr, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(text string) Expression {
	expr, err := Parse(context.Background(), text)
	if err != nil {
		panic(err)
	}

	return expr
}

type scanState int

const (
	scanOperator scanState = iota // between operands
	scanVariable                  // inside $name
	scanLiteral                   // inside "..."
)

type scopeKind int

const (
	scopeRoot     scopeKind = iota // whole input
	scopeGroup                     // ( ... )
	scopeNegation                  // the "!" of !( ... ), resolved by its group
	scopeOperand                   // right operand of a pending condition
)

// scope holds one partially resolved operand and at most one pending
// operator.
type scope struct {
	node  Expression
	kind  scopeKind
	start int
	op    Operator
	opAt  int
}

// parser holds the parser state.
type parser struct {
	input string
	stack []*scope
	token strings.Builder
	pos   int
	mark  int // start of the variable or literal being scanned
	depth int // open parentheses
	state scanState
}

func (p *parser) parse() (Expression, error) {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])

		switch p.state {
		case scanLiteral:
			if err := p.scanLiteral(r, size); err != nil {
				return nil, err
			}

			continue

		case scanVariable:
			if isVariableRune(r) {
				p.token.WriteString(p.input[p.pos : p.pos+size])
				p.pos += size

				continue
			}

			if !isVariableTerminator(r) {
				return nil, ErrInvalidVariableCharacter.At(p.pos, string(r))
			}

			if err := p.endVariable(); err != nil {
				return nil, err
			}
		}

		if err := p.scan(r, size); err != nil {
			return nil, err
		}
	}

	return p.finish()
}

// scan handles one character outside of variables and literals.
func (p *parser) scan(r rune, size int) error {
	switch r {
	case ' ', '\t', '\n', '\r':
		p.pos += size

		return nil

	case '(':
		if err := p.expectOperand(); err != nil {
			return err
		}

		p.push(&scope{kind: scopeGroup, start: p.pos})
		p.depth++
		p.pos++

		return nil

	case ')':
		return p.closeGroup()

	case '$', '"':
		if err := p.expectOperand(); err != nil {
			return err
		}

		p.state = scanVariable
		if r == '"' {
			p.state = scanLiteral
		}

		p.mark = p.pos
		p.token.Reset()
		p.pos++

		return nil

	case '=':
		return p.operator(OpEqual, OpIs)

	case '!':
		if strings.HasPrefix(p.input[p.pos+1:], "(") {
			if err := p.expectOperand(); err != nil {
				return err
			}

			p.push(&scope{kind: scopeNegation, start: p.pos, op: OpNot, opAt: p.pos})
			p.pos++

			return nil
		}

		if strings.HasPrefix(p.input[p.pos+1:], "=") {
			return p.operator(OpNotEqual, OpIsNot)
		}

		return ErrUnexpectedCharacter.At(p.pos, "!")

	case '&':
		return p.operator(OpNone, OpAnd)

	case '|':
		return p.operator(OpNone, OpOr)

	case '^':
		return p.operator(OpNone, OpXor)

	default:
		return ErrUnexpectedCharacter.At(p.pos, string(r))
	}
}

func (p *parser) scanLiteral(r rune, size int) error {
	switch {
	case r == '\\' && strings.HasPrefix(p.input[p.pos+1:], `"`):
		p.token.WriteByte('"')
		p.pos += 2

	case r == '"':
		p.pos++
		p.state = scanOperator

		return p.arrive(&Literal{Value: p.token.String()}, p.mark)

	default:
		p.token.WriteString(p.input[p.pos : p.pos+size])
		p.pos += size
	}

	return nil
}

func (p *parser) endVariable() error {
	p.state = scanOperator

	name := p.token.String()
	if name == "" {
		return ErrEmptyVariable.At(p.mark, "$")
	}

	return p.arrive(&Variable{Name: name}, p.mark)
}

// operator sets the pending operator of the current scope. valueOp applies
// when the left operand is value-shaped and condOp when it is a condition;
// a valueOp of [OpNone] means the operator requires a condition.
func (p *parser) operator(valueOp, condOp Operator) error {
	at := p.pos
	tok := condOp.Token()

	if err := p.settle(); err != nil {
		return err
	}

	top := p.top()
	if top.op != OpNone {
		return ErrDoubleOperator.At(at, tok)
	}

	if !strings.HasPrefix(p.input[at:], tok) {
		return p.unexpected(at + 1)
	}

	if top.node == nil {
		return ErrNoLeftOperand.At(at, tok)
	}

	op := condOp

	if IsValue(top.node) {
		if valueOp == OpNone {
			return ErrInvalidLeftOperand.At(at, tok)
		}

		op = valueOp
	}

	top.op, top.opAt = op, at
	p.pos += len(tok)

	return nil
}

// expectOperand fails if the current scope already holds an operand with no
// operator to combine it with the next one.
func (p *parser) expectOperand() error {
	if top := p.top(); top.node != nil && top.op == OpNone {
		return p.unexpected(p.pos)
	}

	return nil
}

// arrive delivers a completed operand to the current scope.
//
// A value arriving as the right side of a pending condition opens an operand
// scope, so that a following "==" binds to the value rather than to the
// whole condition.
func (p *parser) arrive(e Expression, at int) error {
	top := p.top()

	if IsValue(e) && top.op.IsCondition() {
		p.push(&scope{kind: scopeOperand, start: at, node: e})

		return nil
	}

	if err := p.combine(top, e, at); err != nil {
		return err
	}

	for top.kind == scopeNegation && top.op == OpNone {
		p.pop()

		parent := p.top()
		if err := p.combine(parent, top.node, top.start); err != nil {
			return err
		}

		top = parent
	}

	return nil
}

// combine resolves the pending operator of s with e as its right operand, or
// adopts e if s is empty.
func (p *parser) combine(s *scope, e Expression, at int) error {
	switch {
	case s.op == OpNone:
		if s.node != nil {
			return p.unexpected(at)
		}

		s.node = e

		return nil

	case s.op == OpNot:
		if IsValue(e) {
			return ErrInvalidRightOperand.At(at, s.op.Token())
		}

		s.node = &Not{Operand: e}

	case s.op.IsComparison():
		if !IsValue(e) {
			return ErrInvalidRightOperand.At(at, s.op.Token())
		}

		s.node = &BinaryValue{Op: s.op, Left: s.node, Right: e}

	default:
		if IsValue(e) {
			return ErrInvalidRightOperand.At(at, s.op.Token())
		}

		s.node = &BinaryCondition{Op: s.op, Left: s.node, Right: e}
	}

	s.op = OpNone

	return nil
}

// settle folds operand scopes holding a finished condition into their
// parents, so the next operator applies to everything to its left.
func (p *parser) settle() error {
	for {
		top := p.top()
		if top.kind != scopeOperand || top.op != OpNone || IsValue(top.node) {
			return nil
		}

		p.pop()

		if err := p.combine(p.top(), top.node, top.start); err != nil {
			return err
		}
	}
}

// foldOperands merges every operand scope above the nearest group or root.
func (p *parser) foldOperands() error {
	for top := p.top(); top.kind == scopeOperand; top = p.top() {
		p.pop()

		if top.op != OpNone {
			return ErrNoRightOperand.At(top.opAt, top.op.Token())
		}

		if err := p.combine(p.top(), top.node, top.start); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) closeGroup() error {
	at := p.pos

	if p.depth == 0 {
		return ErrUnmatchedClose.At(at, ")")
	}

	p.depth--

	if err := p.foldOperands(); err != nil {
		return err
	}

	group := p.pop()

	if group.op != OpNone {
		return ErrNoRightOperand.At(group.opAt, group.op.Token())
	}

	if group.node == nil {
		return ErrUnexpectedCharacter.At(at, ")")
	}

	p.pos++

	return p.arrive(group.node, group.start)
}

func (p *parser) finish() (Expression, error) {
	switch p.state {
	case scanLiteral:
		return nil, ErrUnterminatedLiteral.At(p.mark, `"`)

	case scanVariable:
		if err := p.endVariable(); err != nil {
			return nil, err
		}
	}

	if p.depth > 0 {
		for i := len(p.stack) - 1; i >= 0; i-- {
			if p.stack[i].kind == scopeGroup {
				return nil, ErrUnmatchedOpen.At(p.stack[i].start, "(")
			}
		}
	}

	if err := p.foldOperands(); err != nil {
		return nil, err
	}

	root := p.top()

	if root.op != OpNone {
		return nil, ErrNoRightOperand.At(root.opAt, root.op.Token())
	}

	if root.node == nil {
		return nil, ErrNoLeftOperand.At(0, "")
	}

	return root.node, nil
}

func (p *parser) top() *scope { return p.stack[len(p.stack)-1] }

func (p *parser) push(s *scope) { p.stack = append(p.stack, s) }

func (p *parser) pop() *scope {
	s := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	return s
}

// unexpected reports the character at offset i, or the end of input.
func (p *parser) unexpected(i int) *Error {
	if i >= len(p.input) {
		return ErrUnexpectedCharacter.At(len(p.input), "")
	}

	r, _ := utf8.DecodeRuneInString(p.input[i:])

	return ErrUnexpectedCharacter.At(i, string(r))
}

func isVariableRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '.' || r == '-' || r == '_'
}

// isVariableTerminator reports whether r ends a variable name and is then
// scanned as a token of its own.
func isVariableTerminator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '=', '!', '&', '|', '^', ')':
		return true
	default:
		return false
	}
}

// nodeName returns the operator name of e, or its node type for leaves.
func nodeName(e Expression) string {
	switch n := e.(type) {
	case *Literal:
		return "LITERAL"
	case *Variable:
		return "VARIABLE"
	case *StringArray:
		return "ARRAY"
	case *Not:
		return OpNot.String()
	case *BinaryCondition:
		return n.Op.String()
	case *BinaryValue:
		return n.Op.String()
	default:
		return ""
	}
}
