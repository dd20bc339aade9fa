package descriptor

import (
	"log/slog"
	"strings"
)

// Structural errors returned by [Read]. Each identifies the offending
// element and the path of its ancestors.
var (
	ErrUnexpectedElement  = NewError("unexpected element")
	ErrMissingAttribute   = NewError("missing required attribute")
	ErrInvalidOrder       = NewError("invalid order value")
	ErrInvalidValue       = NewError("invalid value")
	ErrDuplicateElement   = NewError("duplicate element")
	ErrUnexpectedClose    = NewError("unexpected close")
	ErrIncompleteDocument = NewError("incomplete document")
	ErrReadEvents         = NewError("cannot read markup events")
)

// Error represents a descriptor error with the element it concerns and
// structured logging attributes. It implements both error and slog.LogValuer
// interfaces.
//
// Errors derived from a sentinel still match it with [errors.Is].
type Error struct {
	kind      *Error
	err       error // Wrapped error (for errors.Unwrap)
	msg       string
	element   string
	attribute string
	path      []string
	attrs     []slog.Attr
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e

	return e
}

// Error implements the error interface.
//
//	<msg> [<element[@attribute]>] [in <path>][: <err>]
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.msg)

	if e.element != "" || e.attribute != "" {
		b.WriteString(" <")
		b.WriteString(e.element)

		if e.attribute != "" {
			b.WriteByte('@')
			b.WriteString(e.attribute)
		}

		b.WriteByte('>')
	}

	if len(e.path) > 0 {
		b.WriteString(" in ")
		b.WriteString(e.Path())
	}

	if e.err != nil {
		b.WriteString(": ")
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

// Element returns the name of the element the error concerns.
func (e *Error) Element() string { return e.element }

// Attribute returns the name of the attribute the error concerns, if any.
func (e *Error) Attribute() string { return e.attribute }

// Path returns the slash-separated names of the element's ancestors,
// starting at the document root.
func (e *Error) Path() string { return strings.Join(e.path, "/") }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	attrs = append(attrs, slog.String("error", e.msg))

	if e.element != "" {
		attrs = append(attrs, slog.String("element", e.element))
	}

	if e.attribute != "" {
		attrs = append(attrs, slog.String("attribute", e.attribute))
	}

	if len(e.path) > 0 {
		attrs = append(attrs, slog.String("path", e.Path()))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// In returns a copy of e located at element below the given ancestors.
func (e *Error) In(path []string, element string) *Error {
	c := e.clone()
	c.path = append([]string(nil), path...)
	c.element = element

	return c
}

// WithAttribute returns a copy of e naming the offending attribute.
func (e *Error) WithAttribute(name string) *Error {
	c := e.clone()
	c.attribute = name

	return c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
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
