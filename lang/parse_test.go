package lang

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Trees(t *testing.T) {
	var (
		a = NewVariable("a")
		b = NewVariable("b")
		c = NewVariable("c")
	)

	eq := func(v *Variable, s string) *BinaryValue { return Equal(v, NewLiteral(s)) }

	tests := []struct {
		name  string
		input string
		want  Expression
	}{
		{
			name:  "and of equalities",
			input: `$a == "foo" && $b == "bar"`,
			want:  And(eq(a, "foo"), eq(b, "bar")),
		},
		{
			name:  "condition inequivalence",
			input: `($a == "x") != ($b == "y")`,
			want:  IsNot(eq(a, "x"), eq(b, "y")),
		},
		{
			name:  "xor",
			input: `$a == "x" ^ $b == "y"`,
			want:  Xor(eq(a, "x"), eq(b, "y")),
		},
		{
			name:  "left associative",
			input: `$a == "x" && $b == "y" || $c == "z"`,
			want:  Or(And(eq(a, "x"), eq(b, "y")), eq(c, "z")),
		},
		{
			name:  "left associative or then and",
			input: `$a == "x" || $b == "y" && $c == "z"`,
			want:  And(Or(eq(a, "x"), eq(b, "y")), eq(c, "z")),
		},
		{
			name:  "chained xor",
			input: `$a == "x" ^ $b == "y" ^ $c == "z"`,
			want:  Xor(Xor(eq(a, "x"), eq(b, "y")), eq(c, "z")),
		},
		{
			name:  "group on the right",
			input: `$a == "x" || ($b == "y" && $c == "z")`,
			want:  Or(eq(a, "x"), And(eq(b, "y"), eq(c, "z"))),
		},
		{
			name:  "group on the left",
			input: `($a == "x" && $b == "y") || $c == "z"`,
			want:  Or(And(eq(a, "x"), eq(b, "y")), eq(c, "z")),
		},
		{
			name:  "negation",
			input: `!($a == "x")`,
			want:  Negate(eq(a, "x")),
		},
		{
			name:  "negation then operator",
			input: `!($a == "x") && $b != "y"`,
			want:  And(Negate(eq(a, "x")), NotEqual(b, NewLiteral("y"))),
		},
		{
			name:  "negated group on the right",
			input: `$a == "x" && !($b == "y" || $c == "z")`,
			want:  And(eq(a, "x"), Negate(Or(eq(b, "y"), eq(c, "z")))),
		},
		{
			name:  "condition equivalence without parentheses",
			input: `$a == "x" == $b == "y"`,
			want:  Is(eq(a, "x"), eq(b, "y")),
		},
		{
			name:  "escaped quotes and parentheses in literal",
			input: `"a \"quoted\" (value)" == $b`,
			want:  Equal(NewLiteral(`a "quoted" (value)`), b),
		},
		{
			name:  "backslash without quote is literal",
			input: `$a == "C:\dir"`,
			want:  eq(a, `C:\dir`),
		},
		{
			name:  "variable name characters",
			input: `$my.var-name_1 == "1"`,
			want:  Equal(NewVariable("my.var-name_1"), NewLiteral("1")),
		},
		{
			name:  "variables on both sides",
			input: `$a == $b`,
			want:  Equal(a, b),
		},
		{
			name:  "grouped value operand",
			input: `$a == ($b)`,
			want:  Equal(a, b),
		},
		{
			name:  "redundant groups",
			input: `(($a == "x"))`,
			want:  eq(a, "x"),
		},
		{
			name:  "whitespace variety",
			input: "\t$a==\"x\"\n&&\r\n$b==\"y\"",
			want:  And(eq(a, "x"), eq(b, "y")),
		},
		{
			name:  "bare variable",
			input: `$a`,
			want:  a,
		},
		{
			name:  "bare literal",
			input: `"x"`,
			want:  NewLiteral("x"),
		},
		{
			name:  "empty literal",
			input: `""`,
			want:  NewLiteral(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}

			// Printing and parsing again must give the same tree.
			again, err := Parse(t.Context(), got.String())
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", got.String(), err)
			}

			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("round trip of %q mismatch (-first +second):\n%s",
					got.String(), diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantIndex int
		wantToken string
	}{
		{"unmatched open", `($a==$b`, ErrUnmatchedOpen, 0, "("},
		{"unmatched open after group", `($a == "x") && ($b == "y"`, ErrUnmatchedOpen, 15, "("},
		{"unmatched close", `$a==$b)`, ErrUnmatchedClose, 6, ")"},
		{"unmatched close after variable", `$a)`, ErrUnmatchedClose, 2, ")"},
		{"no left operand", `== $b`, ErrNoLeftOperand, 0, "=="},
		{"empty input", ``, ErrNoLeftOperand, 0, ""},
		{"blank input", "  \t", ErrNoLeftOperand, 0, ""},
		{"no right operand", `$a ==`, ErrNoRightOperand, 3, "=="},
		{"no right operand after and", `$a == "x" &&`, ErrNoRightOperand, 10, "&&"},
		{"no right operand in group", `($a == "x" &&)`, ErrNoRightOperand, 11, "&&"},
		{"empty variable", `$ == "x"`, ErrEmptyVariable, 0, "$"},
		{"empty variable at end", `$a == $`, ErrEmptyVariable, 6, "$"},
		{"invalid variable character", `$a# == "x"`, ErrInvalidVariableCharacter, 2, "#"},
		{"quote inside variable", `$a"x"`, ErrInvalidVariableCharacter, 2, `"`},
		{"double operator", `$a == == "x"`, ErrDoubleOperator, 6, "=="},
		{"unterminated literal", `$a == "x`, ErrUnterminatedLiteral, 6, `"`},
		{"single equals", `$a = "x"`, ErrUnexpectedCharacter, 4, " "},
		{"single ampersand", `$a == "x" & $b`, ErrUnexpectedCharacter, 11, " "},
		{"trailing equals", `$a =`, ErrUnexpectedCharacter, 4, ""},
		{"bang without paren", `!$a`, ErrUnexpectedCharacter, 0, "!"},
		{"adjacent variables", `$a $b`, ErrUnexpectedCharacter, 3, "$"},
		{"adjacent literals", `"x" "y"`, ErrUnexpectedCharacter, 4, `"`},
		{"empty group", `()`, ErrUnexpectedCharacter, 1, ")"},
		{"unknown character", `$a == "x" # $b`, ErrUnexpectedCharacter, 10, "#"},
		{"and on value", `$a && $b == "x"`, ErrInvalidLeftOperand, 3, "&&"},
		{"xor on value", `$a ^ $b`, ErrInvalidLeftOperand, 3, "^"},
		{"value right of and", `$a == "x" && $b`, ErrInvalidRightOperand, 13, "&&"},
		{"condition right of equal", `$a == ("x" == "y")`, ErrInvalidRightOperand, 6, "=="},
		{"negated value", `!($a)`, ErrInvalidRightOperand, 1, "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(t.Context(), tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error %T is not *Error", tt.input, err)
			}

			if perr.Index() != tt.wantIndex {
				t.Errorf("Parse(%q) index = %d, want %d", tt.input, perr.Index(), tt.wantIndex)
			}

			if perr.Token() != tt.wantToken {
				t.Errorf("Parse(%q) token = %q, want %q", tt.input, perr.Token(), tt.wantToken)
			}
		})
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := Parse(t.Context(), `$a==$b)`)
	if err == nil {
		t.Fatal("expected error")
	}

	want := `unmatched close parenthesis ")" at index 6`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestParse_Independent(t *testing.T) {
	// A failed parse leaves nothing behind for the next one.
	if _, err := Parse(t.Context(), `($a == "x"`); err == nil {
		t.Fatal("expected error")
	}

	got, err := Parse(t.Context(), `$a == "x"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(Equal(NewVariable("a"), NewLiteral("x")), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExpression_String(t *testing.T) {
	tests := []struct {
		expr Expression
		want string
	}{
		{Equal(NewVariable("a"), NewLiteral("x")), `$a == "x"`},
		{NewLiteral(`say "hi"`), `"say \"hi\""`},
		{
			Or(And(Equal(NewVariable("a"), NewLiteral("x")), Equal(NewVariable("b"), NewLiteral("y"))),
				Equal(NewVariable("c"), NewLiteral("z"))),
			`($a == "x" && $b == "y") || $c == "z"`,
		},
		{
			IsNot(Equal(NewVariable("a"), NewLiteral("x")), Negate(Equal(NewVariable("b"), NewLiteral("y")))),
			`$a == "x" != !($b == "y")`,
		},
		{NewContains(StringArrayOf("a", "b"), NewLiteral("a")), `["a", "b"] contains "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	expr := MustParse(`$b == "x" && ($a == $b || !($c == $a))`)

	got := Variables(expr)
	want := []string{"b", "a", "c"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Variables mismatch (-want +got):\n%s", diff)
	}
}
