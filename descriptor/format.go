package descriptor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// inputBlockDoc is the encoded form of an [InputBlock]. Each entry is keyed
// by its kind so the concrete input type survives encoding.
type inputBlockDoc struct {
	Entries []map[string]Input `json:"entries,omitempty" yaml:"entries,omitempty"`

	Branch `yaml:",inline"`
}

func (b InputBlock) doc() inputBlockDoc {
	d := inputBlockDoc{Branch: b.Branch}

	for _, in := range b.Entries {
		d.Entries = append(d.Entries, map[string]Input{inputKind(in): in})
	}

	return d
}

// MarshalJSON encodes b with each entry keyed by its input kind.
func (b InputBlock) MarshalJSON() ([]byte, error) { return json.Marshal(b.doc()) }

// MarshalYAML encodes b with each entry keyed by its input kind.
func (b InputBlock) MarshalYAML() (any, error) { return b.doc(), nil }

type contextBlockDoc struct {
	Nodes []map[string]Context `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

func (b ContextBlock) doc() contextBlockDoc {
	var d contextBlockDoc

	for _, c := range b.Nodes {
		d.Nodes = append(d.Nodes, map[string]Context{contextKind(c): c})
	}

	return d
}

// MarshalJSON encodes b with each node keyed by its context kind.
func (b ContextBlock) MarshalJSON() ([]byte, error) { return json.Marshal(b.doc()) }

// MarshalYAML encodes b with each node keyed by its context kind.
func (b ContextBlock) MarshalYAML() (any, error) { return b.doc(), nil }

func inputKind(in Input) string {
	switch in.(type) {
	case *InputText:
		return "text"
	case *InputBoolean:
		return "boolean"
	case *InputEnum:
		return "enum"
	case *InputList:
		return "list"
	default:
		return "input"
	}
}

func contextKind(c Context) string {
	switch c.(type) {
	case *ContextText:
		return "text"
	case *ContextBoolean:
		return "boolean"
	case *ContextEnum:
		return "enum"
	case *ContextList:
		return "list"
	default:
		return "context"
	}
}

// FormatJSON writes s as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, s *Script, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(s, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes s as YAML to the writer.
func FormatYAML(ctx context.Context, w io.Writer, s *Script, indent int) error {
	data, err := yaml.MarshalContext(ctx, s, yaml.Indent(max(indent, 2)))
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// FormatTree writes an indented outline of s, one node per line.
func FormatTree(_ context.Context, w io.Writer, s *Script, indent int) error {
	t := &tree{pad: strings.Repeat(" ", max(indent, 1))}
	t.script(s)

	_, err := io.WriteString(w, t.b.String())

	return err
}

type tree struct {
	b     strings.Builder
	pad   string
	depth int
}

func (t *tree) line(format string, args ...any) {
	t.b.WriteString(strings.Repeat(t.pad, t.depth))
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteByte('\n')
}

func (t *tree) nest(fn func()) {
	t.depth++
	fn()
	t.depth--
}

func (t *tree) script(s *Script) {
	t.line("archetype-script")
	t.nest(func() {
		t.help(s.Help)
		t.contexts(s.Contexts)

		for _, e := range s.Execs {
			t.line("exec %s", ref(e.URL, e.Src))
		}

		for _, src := range s.Sources {
			t.line("source %s", ref(src.URL, src.Src))
		}

		for _, st := range s.Steps {
			t.step(st)
		}

		for _, in := range s.Inputs {
			t.inputs(in)
		}

		t.output(s.Output)
	})
}

func (t *tree) help(h string) {
	if h != "" {
		t.line("help %s", strconv.Quote(h))
	}
}

func (t *tree) step(s *Step) {
	t.line("step %s%s", strconv.Quote(s.Label), cond(s.Conditional))
	t.nest(func() {
		t.help(s.Help)
		t.contexts(s.Contexts)

		for _, e := range s.Execs {
			t.line("exec %s", ref(e.URL, e.Src))
		}

		for _, src := range s.Sources {
			t.line("source %s", ref(src.URL, src.Src))
		}

		for _, in := range s.Inputs {
			t.inputs(in)
		}

		t.output(s.Output)
	})
}

func (t *tree) branch(b *Branch) {
	t.contexts(b.Contexts)

	for _, e := range b.Execs {
		t.line("exec %s", ref(e.URL, e.Src))
	}

	for _, src := range b.Sources {
		t.line("source %s", ref(src.URL, src.Src))
	}

	for _, in := range b.Inputs {
		t.inputs(in)
	}

	for _, st := range b.Steps {
		t.step(st)
	}

	t.output(b.Output)
}

func (t *tree) inputs(b *InputBlock) {
	t.line("input")
	t.nest(func() {
		for _, in := range b.Entries {
			t.input(in)
		}

		t.branch(&b.Branch)
	})
}

func (t *tree) input(in Input) {
	base := in.Base()

	var extra string

	switch n := in.(type) {
	case *InputText:
		if n.Placeholder != "" {
			extra = " placeholder=" + strconv.Quote(n.Placeholder)
		}

	case *InputList:
		if n.Min != "" {
			extra += " min=" + n.Min
		}

		if n.Max != "" {
			extra += " max=" + n.Max
		}
	}

	if base.Default != "" {
		extra += " default=" + strconv.Quote(base.Default)
	}

	if base.Optional {
		extra += " optional"
	}

	t.line("%s %s %s%s%s", inputKind(in), base.Name, strconv.Quote(base.Label),
		extra, cond(base.Conditional))
	t.nest(func() {
		t.help(base.Help)

		var options []*InputOption

		switch n := in.(type) {
		case *InputEnum:
			options = n.Options
		case *InputList:
			options = n.Options
		}

		for _, o := range options {
			t.line("option %s %s%s", o.Value, strconv.Quote(o.Label), cond(o.Conditional))
			t.nest(func() {
				t.help(o.Help)
				t.branch(&o.Branch)
			})
		}

		t.branch(&base.Branch)
	})
}

func (t *tree) contexts(blocks []*ContextBlock) {
	for _, b := range blocks {
		t.line("context")
		t.nest(func() {
			for _, c := range b.Nodes {
				switch n := c.(type) {
				case *ContextText:
					t.line("text %s = %s", n.Path, strconv.Quote(n.Value))
				case *ContextBoolean:
					t.line("boolean %s = %t", n.Path, n.Value)
				case *ContextEnum:
					t.line("enum %s = %s", n.Path, quoteAll(n.Values))
				case *ContextList:
					t.line("list %s = %s", n.Path, quoteAll(n.Values))
				}
			}
		})
	}
}

func (t *tree) output(o *Output) {
	if o == nil {
		return
	}

	t.line("output%s", cond(o.Conditional))
	t.nest(func() {
		for _, tr := range o.Transformations {
			t.line("transformation %s", tr.ID)
			t.nest(func() {
				for _, r := range tr.Replacements {
					t.line("replace %s -> %s", strconv.Quote(r.Regex), strconv.Quote(r.Replacement))
				}
			})
		}

		for _, f := range o.Files {
			t.line("file %s -> %s%s", f.Source, f.Target, ifCond(f.If))
		}

		for _, fs := range o.FileSets {
			t.line("files %s%s", strings.Join(fs.Transformations, ","), ifCond(fs.If))
			t.nest(func() { t.selection(fs.Selection) })
		}

		for _, tp := range o.Templates {
			t.line("template %s %s -> %s%s", tp.Engine, tp.Source, tp.Target, ifCond(tp.If))
			t.nest(func() { t.model(tp.Model) })
		}

		for _, ts := range o.TemplateSets {
			t.line("templates %s %s%s", ts.Engine, strings.Join(ts.Transformations, ","), ifCond(ts.If))
			t.nest(func() {
				t.selection(ts.Selection)
				t.model(ts.Model)
			})
		}

		t.model(o.Model)
	})
}

func (t *tree) selection(s Selection) {
	if s.Directory != "" {
		t.line("directory %s", s.Directory)
	}

	for _, in := range s.Includes {
		t.line("include %s", in)
	}

	for _, ex := range s.Excludes {
		t.line("exclude %s", ex)
	}
}

func (t *tree) model(m *Model) {
	if m == nil {
		return
	}

	t.line("model%s", cond(m.Conditional))
	t.nest(func() { t.keyed(m.Values, m.Lists, m.Maps) })
}

func (t *tree) keyed(values []*ModelKeyedValue, lists []*ModelKeyedList, maps []*ModelKeyedMap) {
	for _, v := range values {
		t.line("value %s = %s", v.Key, modelValue(&v.ModelValue))
	}

	for _, l := range lists {
		t.line("list %s (order %d)%s", l.Key, l.Order, cond(l.Conditional))
		t.nest(func() { t.list(&l.ModelList) })
	}

	for _, m := range maps {
		t.line("map %s (order %d)%s", m.Key, m.Order, cond(m.Conditional))
		t.nest(func() { t.keyed(m.Values, m.Lists, m.Maps) })
	}
}

func (t *tree) list(l *ModelList) {
	for _, v := range l.Values {
		t.line("value %s", modelValue(v))
	}

	for _, inner := range l.Lists {
		t.line("list (order %d)%s", inner.Order, cond(inner.Conditional))
		t.nest(func() { t.list(inner) })
	}

	for _, m := range l.Maps {
		t.line("map (order %d)%s", m.Order, cond(m.Conditional))
		t.nest(func() { t.keyed(m.Values, m.Lists, m.Maps) })
	}
}

func modelValue(v *ModelValue) string {
	var s string

	switch {
	case v.URL != "":
		s = "url:" + v.URL
	case v.File != "":
		s = "file:" + v.File
	case v.Template != "":
		s = "template:" + v.Template
	default:
		s = strconv.Quote(v.Value)
	}

	return s + " (order " + strconv.Itoa(v.Order) + ")" + cond(v.Conditional)
}

func ref(url, src string) string {
	if url != "" {
		return url
	}

	return src
}

func cond(c Conditional) string {
	s := ifCond(c.If)
	if c.Unless != "" {
		s += " unless " + c.Unless
	}

	return s
}

func ifCond(expr string) string {
	if expr == "" {
		return ""
	}

	return " if " + expr
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
