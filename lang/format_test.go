package lang

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestFormatTree(t *testing.T) {
	expr := MustParse(`$a == "x" && !($b == "y")`)

	var buf bytes.Buffer
	if err := FormatTree(t.Context(), &buf, expr, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
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
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("FormatTree mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, MustParse(`$a == "x"`), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"left":{"variable":"a"},"op":"EQUAL","right":{"literal":"x"}}` + "\n"
	if buf.String() != want {
		t.Errorf("FormatJSON = %q, want %q", buf.String(), want)
	}
}

func TestFormatYAML(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer
		if err := FormatYAML(t.Context(), &buf, MustParse(`!($a == "x")`), indent); err != nil {
			t.Fatalf("indent %d: unexpected error: %v", indent, err)
		}

		var got map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("indent %d: output is not YAML: %v\n%s", indent, err, buf.String())
		}

		want := map[string]any{
			"op": "NOT",
			"operand": map[string]any{
				"op":    "EQUAL",
				"left":  map[string]any{"variable": "a"},
				"right": map[string]any{"literal": "x"},
			},
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("indent %d: mismatch (-want +got):\n%s", indent, diff)
		}
	}
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Format(t.Context(), &buf, MustParse(`(  $a=="x"&&$b=="y" )`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `$a == "x" && $b == "y"` + "\n"
	if buf.String() != want {
		t.Errorf("Format = %q, want %q", buf.String(), want)
	}
}
