package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestFmtNative(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		stdin string
		want  string
	}{
		{"spacing", `$a=="x"&&($b=="y"||$c=="z")`, "", `$a == "x" && ($b == "y" || $c == "z")` + "\n"},
		{"redundant parens", `(($a == "x"))`, "", `$a == "x"` + "\n"},
		{"stdin", "-", "!($a == \"x\")\n", `!($a == "x")` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			f := Native{Expr: tt.expr}
			if err := f.Run(t.Context(), Stdio{In: strings.NewReader(tt.stdin), Out: &out}); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestFmtAST(t *testing.T) {
	var out bytes.Buffer

	a := AST{Expr: `$a == "x" && !($b == "y")`, Indent: 2}
	if err := a.Run(t.Context(), Stdio{Out: &out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := `AND
  EQUAL
    $a
    "x"
  NOT
    EQUAL
      $b
      "y"
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestFmtJSON(t *testing.T) {
	for _, indent := range []int{0, 4} {
		var out bytes.Buffer

		j := JSON{Expr: `$a == "x" || $b != "y"`, Indent: indent}
		if err := j.Run(t.Context(), Stdio{Out: &out}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("indent %d: output is not JSON: %v\n%s", indent, err, out.String())
		}

		want := map[string]any{
			"op":    "OR",
			"left":  map[string]any{"op": "EQUAL", "left": map[string]any{"variable": "a"}, "right": map[string]any{"literal": "x"}},
			"right": map[string]any{"op": "NOT_EQUAL", "left": map[string]any{"variable": "b"}, "right": map[string]any{"literal": "y"}},
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("indent %d: mismatch (-want +got):\n%s", indent, diff)
		}

		if compact := !strings.Contains(strings.TrimSpace(out.String()), "\n"); compact != (indent == 0) {
			t.Errorf("indent %d: output %q", indent, out.String())
		}
	}
}

func TestFmtYAML(t *testing.T) {
	var out bytes.Buffer

	y := YAML{Expr: `$a == "x"`, Indent: 2}
	if err := y.Run(t.Context(), Stdio{Out: &out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}

	want := map[string]any{
		"op":    "EQUAL",
		"left":  map[string]any{"variable": "a"},
		"right": map[string]any{"literal": "x"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestFmtParseError(t *testing.T) {
	var out bytes.Buffer

	f := Native{Expr: `$a == "x" &&`}
	if err := f.Run(t.Context(), Stdio{Out: &out}); !errors.Is(err, ErrParse) {
		t.Errorf("Run() error = %v, want %v", err, ErrParse)
	}

	if out.Len() != 0 {
		t.Errorf("Run() wrote %q on failure", out.String())
	}
}
