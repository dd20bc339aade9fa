package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Syntax errors returned by [Parse]. Each carries the byte offset of the
// offending input and the character or operator found there.
var (
	ErrUnexpectedCharacter      = NewError("unexpected character")
	ErrUnmatchedOpen            = NewError("unmatched open parenthesis")
	ErrUnmatchedClose           = NewError("unmatched close parenthesis")
	ErrInvalidLeftOperand       = NewError("invalid left operand")
	ErrInvalidRightOperand      = NewError("invalid right operand")
	ErrNoLeftOperand            = NewError("no left operand")
	ErrNoRightOperand           = NewError("no right operand")
	ErrEmptyVariable            = NewError("empty variable name")
	ErrInvalidVariableCharacter = NewError("invalid variable character")
	ErrDoubleOperator           = NewError("double operator")
	ErrUnterminatedLiteral      = NewError("unterminated literal")
)

// Evaluation errors returned by [Evaluate] and [Program.Run].
var (
	ErrUnresolvedVariable = NewError("unresolved variable")
	ErrInvalidOperandType = NewError("invalid operand type")
	ErrInvalidExpression  = NewError("invalid expression")
	ErrCompile            = NewError("expression compilation failed")
	ErrEvaluate           = NewError("expression evaluation failed")
)

// Error represents an error with an optional source position and structured
// logging attributes. It implements both error and slog.LogValuer interfaces.
//
// Errors derived from a sentinel via [Error.At], [Error.With], or
// [Error.Wrap] still match that sentinel with [errors.Is].
type Error struct {
	kind  *Error
	err   error // Wrapped error (for errors.Unwrap)
	msg   string
	token string
	attrs []slog.Attr
	index int
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg, index: -1}
	e.kind = e

	return e
}

// Error implements the error interface.
//
//	<msg> ["<token>"] [at index <n>][: <err>]
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.msg)

	if e.token != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.token))
	}

	if e.index >= 0 {
		b.WriteString(" at index ")
		b.WriteString(strconv.Itoa(e.index))
	}

	if e.err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}

		b.WriteString(e.err.Error())
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind == e.kind
}

// Index returns the byte offset into the source text where the error was
// detected, or -1 if the error is not positional.
func (e *Error) Index() int { return e.index }

// Token returns the character or operator found at [Error.Index].
func (e *Error) Token() string { return e.token }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.index >= 0 {
		attrs = append(attrs, slog.Int("index", e.index))
	}

	if e.token != "" {
		attrs = append(attrs, slog.String("token", e.token))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// At returns a copy of e positioned at index with the offending token.
func (e *Error) At(index int, token string) *Error {
	c := e.clone()
	c.index = index
	c.token = token

	return c
}

// WithToken returns a copy of e naming the offending token without a
// source position.
func (e *Error) WithToken(token string) *Error {
	c := e.clone()
	c.token = token

	return c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

func (e *Error) clone() *Error {
	c := *e

	return &c
}
