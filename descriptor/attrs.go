package descriptor

import (
	"strconv"
	"strings"
)

// attributes are the attributes of one opened element.
type attributes map[string]string

func (a attributes) get(name string) string { return a[name] }

func (a attributes) required(name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", ErrMissingAttribute.WithAttribute(name)
	}

	return v, nil
}

// order parses the order attribute, which defaults to [DefaultOrder].
func (a attributes) order() (int, error) {
	v, ok := a["order"]
	if !ok {
		return DefaultOrder, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, ErrInvalidOrder.WithAttribute("order").Wrap(err)
	}

	return n, nil
}

// optional parses the optional attribute, which defaults to false.
func (a attributes) optional() (bool, error) {
	v, ok := a["optional"]
	if !ok {
		return false, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, ErrInvalidValue.WithAttribute("optional").Wrap(err)
	}

	return b, nil
}

// list splits a comma-separated attribute, dropping empty items.
func (a attributes) list(name string) []string {
	var items []string

	for item := range strings.SplitSeq(a[name], ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func (a attributes) conditional() Conditional {
	return Conditional{If: a["if"], Unless: a["unless"]}
}

// The holder interfaces below are implemented by the nodes that may own a
// given kind of child. The grammar selects which one applies to the node on
// top of the reader's stack.

type contextHolder interface{ addContext(*ContextBlock) }

type execHolder interface{ addExec(*Exec) }

type sourceHolder interface{ addSource(*Source) }

type inputHolder interface{ addInput(*InputBlock) }

type stepHolder interface{ addStep(*Step) }

type outputHolder interface{ setOutput(*Output) bool }

type helpHolder interface{ setHelp(string) }

type entryHolder interface{ addEntry(Input) }

type optionHolder interface{ addOption(*InputOption) }

type nodeHolder interface{ addNode(Context) }

type valueHolder interface{ appendValue(string) }

type modelHolder interface{ setModel(*Model) bool }

type selector interface{ selection() *Selection }

type keyedHolder interface {
	addValue(*ModelKeyedValue)
	addList(*ModelKeyedList)
	addMap(*ModelKeyedMap)
}

func (s *Script) addContext(c *ContextBlock) { s.Contexts = append(s.Contexts, c) }
func (s *Script) addExec(e *Exec)            { s.Execs = append(s.Execs, e) }
func (s *Script) addSource(src *Source)      { s.Sources = append(s.Sources, src) }
func (s *Script) addInput(in *InputBlock)    { s.Inputs = append(s.Inputs, in) }
func (s *Script) addStep(st *Step)           { s.Steps = append(s.Steps, st) }
func (s *Script) setHelp(help string)        { s.Help = help }

func (s *Step) addContext(c *ContextBlock) { s.Contexts = append(s.Contexts, c) }
func (s *Step) addExec(e *Exec)            { s.Execs = append(s.Execs, e) }
func (s *Step) addSource(src *Source)      { s.Sources = append(s.Sources, src) }
func (s *Step) addInput(in *InputBlock)    { s.Inputs = append(s.Inputs, in) }
func (s *Step) setHelp(help string)        { s.Help = help }

func (s *Step) setOutput(o *Output) bool {
	if s.Output != nil {
		return false
	}

	s.Output = o

	return true
}

func (b *Branch) addContext(c *ContextBlock) { b.Contexts = append(b.Contexts, c) }
func (b *Branch) addExec(e *Exec)            { b.Execs = append(b.Execs, e) }
func (b *Branch) addSource(src *Source)      { b.Sources = append(b.Sources, src) }
func (b *Branch) addInput(in *InputBlock)    { b.Inputs = append(b.Inputs, in) }
func (b *Branch) addStep(st *Step)           { b.Steps = append(b.Steps, st) }

func (b *Branch) setOutput(o *Output) bool {
	if b.Output != nil {
		return false
	}

	b.Output = o

	return true
}

func (b *InputBlock) addEntry(in Input) { b.Entries = append(b.Entries, in) }

func (b *InputBase) setHelp(help string)   { b.Help = help }
func (o *InputOption) setHelp(help string) { o.Help = help }

func (e *InputEnum) addOption(o *InputOption) { e.Options = append(e.Options, o) }
func (l *InputList) addOption(o *InputOption) { l.Options = append(l.Options, o) }

func (b *ContextBlock) addNode(c Context) { b.Nodes = append(b.Nodes, c) }

func (c *ContextEnum) appendValue(v string) { c.Values = append(c.Values, v) }
func (c *ContextList) appendValue(v string) { c.Values = append(c.Values, v) }

func (t *Transformation) addReplacement(r *Replacement) {
	t.Replacements = append(t.Replacements, r)
}

func (o *Output) addTransformation(t *Transformation) {
	o.Transformations = append(o.Transformations, t)
}

func (o *Output) addFile(f *File)         { o.Files = append(o.Files, f) }
func (o *Output) addFileSet(f *FileSet)   { o.FileSets = append(o.FileSets, f) }
func (o *Output) addTemplate(t *Template) { o.Templates = append(o.Templates, t) }

func (o *Output) addTemplateSet(t *TemplateSet) {
	o.TemplateSets = append(o.TemplateSets, t)
}

func (o *Output) setModel(m *Model) bool {
	if o.Model != nil {
		return false
	}

	o.Model = m

	return true
}

func (t *Template) setModel(m *Model) bool {
	if t.Model != nil {
		return false
	}

	t.Model = m

	return true
}

func (t *TemplateSet) setModel(m *Model) bool {
	if t.Model != nil {
		return false
	}

	t.Model = m

	return true
}

// selection is promoted to [*FileSet] and [*TemplateSet].
func (s *Selection) selection() *Selection { return s }

func (m *Model) addValue(v *ModelKeyedValue) { m.Values = append(m.Values, v) }
func (m *Model) addList(l *ModelKeyedList)   { m.Lists = append(m.Lists, l) }
func (m *Model) addMap(mp *ModelKeyedMap)    { m.Maps = append(m.Maps, mp) }

func (m *ModelMap) addValue(v *ModelKeyedValue) { m.Values = append(m.Values, v) }
func (m *ModelMap) addList(l *ModelKeyedList)   { m.Lists = append(m.Lists, l) }
func (m *ModelMap) addMap(mp *ModelKeyedMap)    { m.Maps = append(m.Maps, mp) }
