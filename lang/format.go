package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap converts e into nested maps suitable for generic encoders.
// Leaves become {"literal": s}, {"variable": name}, or {"array": [...]};
// composite nodes become {"op": NAME, "left": ..., "right": ...} or
// {"op": "NOT", "operand": ...}.
func ToMap(e Expression) map[string]any {
	switch n := e.(type) {
	case *Literal:
		return map[string]any{"literal": n.Value}

	case *Variable:
		return map[string]any{"variable": n.Name}

	case *StringArray:
		return map[string]any{"array": append([]string{}, n.Values...)}

	case *Not:
		return map[string]any{
			"op":      OpNot.String(),
			"operand": ToMap(n.Operand),
		}

	case *BinaryCondition:
		return map[string]any{
			"op":    n.Op.String(),
			"left":  ToMap(n.Left),
			"right": ToMap(n.Right),
		}

	case *BinaryValue:
		return map[string]any{
			"op":    n.Op.String(),
			"left":  ToMap(n.Left),
			"right": ToMap(n.Right),
		}

	default:
		return nil
	}
}

// Format writes the canonical expression text of e followed by a newline.
func Format(_ context.Context, w io.Writer, e Expression) error {
	_, err := fmt.Fprintln(w, e.String())

	return err
}

// FormatJSON writes the tree of e as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, e Expression, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ToMap(e), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(e))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the tree of e as YAML to the writer. An indent of zero
// selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, e Expression, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(e), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// FormatTree writes an indented outline of e, one node per line.
func FormatTree(_ context.Context, w io.Writer, e Expression, indent int) error {
	var b strings.Builder

	writeTree(&b, e, strings.Repeat(" ", max(indent, 1)), 0)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeTree(b *strings.Builder, e Expression, pad string, depth int) {
	b.WriteString(strings.Repeat(pad, depth))

	switch n := e.(type) {
	case *Not:
		b.WriteString(OpNot.String() + "\n")
		writeTree(b, n.Operand, pad, depth+1)

	case *BinaryCondition:
		b.WriteString(n.Op.String() + "\n")
		writeTree(b, n.Left, pad, depth+1)
		writeTree(b, n.Right, pad, depth+1)

	case *BinaryValue:
		b.WriteString(n.Op.String() + "\n")
		writeTree(b, n.Left, pad, depth+1)
		writeTree(b, n.Right, pad, depth+1)

	case nil:
		b.WriteString("<nil>\n")

	default:
		b.WriteString(e.String() + "\n")
	}
}
