package lang

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the type held by a [Value].
type Kind int

const (
	KindBoolean Kind = iota
	KindString
	KindStringArray
	KindVariableRef
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindStringArray:
		return "array"
	case KindVariableRef:
		return "variable"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of evaluating an [Expression], or a variable binding
// supplied to [EvaluateValues].
//
// The zero Value is Boolean false.
type Value struct {
	str   string
	array []string
	kind  Kind
	flag  bool
}

// BoolValue returns a Boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBoolean, flag: b} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ArrayValue returns a StringArray value holding a copy of elems.
func ArrayValue(elems ...string) Value {
	return Value{kind: KindStringArray, array: slices.Clone(elems)}
}

// RefValue returns an unresolved reference to the variable name. Binding a
// variable to a reference makes it an alias of the referenced variable.
func RefValue(name string) Value { return Value{kind: KindVariableRef, str: name} }

// Kind returns the type held by v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean held by v and whether v is a Boolean.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBoolean }

// AsString returns the string held by v and whether v is a String.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsArray returns a copy of the strings held by v and whether v is a
// StringArray.
func (v Value) AsArray() ([]string, bool) {
	if v.kind != KindStringArray {
		return nil, false
	}

	return slices.Clone(v.array), true
}

// Ref returns the variable name referenced by v and whether v is a
// VariableRef.
func (v Value) Ref() (string, bool) { return v.str, v.kind == KindVariableRef }

// Equal compares two values of the same kind. Arrays are equal when they
// hold the same elements in the same order. Comparing values of different
// kinds, or unresolved references, fails with [ErrInvalidOperandType].
func (v Value) Equal(other Value) (bool, error) {
	if v.kind != other.kind || v.kind == KindVariableRef {
		return false, ErrInvalidOperandType.With(
			slog.String("left", v.kind.String()),
			slog.String("right", other.kind.String()),
		)
	}

	switch v.kind {
	case KindBoolean:
		return v.flag == other.flag, nil
	case KindString:
		return v.str == other.str, nil
	default:
		return slices.Equal(v.array, other.array), nil
	}
}

// Native returns v as a bool, string, or []string. References are returned
// as their "$name" text.
func (v Value) Native() any {
	switch v.kind {
	case KindBoolean:
		return v.flag
	case KindStringArray:
		return slices.Clone(v.array)
	case KindVariableRef:
		return "$" + v.str
	default:
		return v.str
	}
}

// String formats v for display. Strings are returned verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	case KindStringArray:
		return "[" + strings.Join(v.array, ", ") + "]"
	case KindVariableRef:
		return "$" + v.str
	default:
		return v.str
	}
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.Any("value", v.Native()),
	)
}
