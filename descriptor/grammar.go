package descriptor

import "strconv"

// opener builds the node for an opened element, attaches it to parent, and
// returns the node that becomes the new top of the reader's stack. Elements
// that only route character data return their parent.
type opener func(r *reader, parent any, a attributes) (any, error)

type transition struct {
	next Position
	open opener
	top  bool // assign to Script.Output on close
}

type rule map[string]transition

// grammar lists, for every position, the elements that may open there.
var grammar = map[Position]rule{
	PositionDocument: {
		"archetype-script": {next: PositionScript, open: openScript},
	},
	PositionScript: {
		"context": {next: PositionContext, open: attach(contextHolder.addContext, newContextBlock)},
		"exec":    {next: PositionExec, open: attach(execHolder.addExec, newExec)},
		"source":  {next: PositionSource, open: attach(sourceHolder.addSource, newSource)},
		"step":    {next: PositionStep, open: attach(stepHolder.addStep, newStep)},
		"input":   {next: PositionInput, open: attach(inputHolder.addInput, newInputBlock)},
		"output":  {next: PositionOutput, open: openTopOutput, top: true},
		"help":    {next: PositionHelp, open: through[helpHolder]},
	},
	PositionStep: {
		"context": {next: PositionContext, open: attach(contextHolder.addContext, newContextBlock)},
		"exec":    {next: PositionExec, open: attach(execHolder.addExec, newExec)},
		"source":  {next: PositionSource, open: attach(sourceHolder.addSource, newSource)},
		"input":   {next: PositionInput, open: attach(inputHolder.addInput, newInputBlock)},
		"output":  {next: PositionOutput, open: openOutput},
		"help":    {next: PositionHelp, open: through[helpHolder]},
	},
	PositionInput: branch(rule{
		"text":    {next: PositionInputText, open: attach(entryHolder.addEntry, newInputText)},
		"boolean": {next: PositionInputBoolean, open: attach(entryHolder.addEntry, newInputBoolean)},
		"enum":    {next: PositionInputEnum, open: attach(entryHolder.addEntry, newInputEnum)},
		"list":    {next: PositionInputList, open: attach(entryHolder.addEntry, newInputList)},
	}),
	PositionInputText:    branch(withHelp(nil)),
	PositionInputBoolean: branch(withHelp(nil)),
	PositionInputEnum:    branch(withHelp(withOption(nil))),
	PositionInputList:    branch(withHelp(withOption(nil))),
	PositionOption:       branch(withHelp(nil)),
	PositionContext: {
		"text":    {next: PositionContextText, open: attach(nodeHolder.addNode, newContextText)},
		"boolean": {next: PositionContextBoolean, open: attach(nodeHolder.addNode, newContextBoolean)},
		"enum":    {next: PositionContextEnum, open: attach(nodeHolder.addNode, newContextEnum)},
		"list":    {next: PositionContextList, open: attach(nodeHolder.addNode, newContextList)},
	},
	PositionContextEnum: {
		"value": {next: PositionContextValue, open: through[valueHolder]},
	},
	PositionContextList: {
		"value": {next: PositionContextValue, open: through[valueHolder]},
	},
	PositionOutput: {
		"transformation": {next: PositionTransformation, open: attach((*Output).addTransformation, newTransformation)},
		"file":           {next: PositionFile, open: attach((*Output).addFile, newFile)},
		"files":          {next: PositionFiles, open: attach((*Output).addFileSet, newFileSet)},
		"template":       {next: PositionTemplate, open: attach((*Output).addTemplate, newTemplate)},
		"templates":      {next: PositionTemplates, open: attach((*Output).addTemplateSet, newTemplateSet)},
		"model":          {next: PositionModel, open: openModel},
	},
	PositionTransformation: {
		"replace": {next: PositionReplace, open: attach((*Transformation).addReplacement, newReplacement)},
	},
	PositionFiles: withSelection(nil),
	PositionTemplate: {
		"model": {next: PositionModel, open: openModel},
	},
	PositionTemplates: withSelection(rule{
		"model": {next: PositionModel, open: openModel},
	}),
	PositionIncludes: {
		"include": {next: PositionInclude, open: through[selector]},
	},
	PositionExcludes: {
		"exclude": {next: PositionExclude, open: through[selector]},
	},
	PositionModel:    keyed(),
	PositionModelMap: keyed(),
	PositionModelList: {
		"value": {next: PositionModelValue, open: openListValue},
		"list":  {next: PositionModelList, open: openListList},
		"map":   {next: PositionModelMap, open: openListMap},
	},
}

// branch adds the sub-trees shared by input blocks, inputs, and options.
func branch(r rule) rule {
	r["context"] = transition{next: PositionContext, open: attach(contextHolder.addContext, newContextBlock)}
	r["exec"] = transition{next: PositionExec, open: attach(execHolder.addExec, newExec)}
	r["source"] = transition{next: PositionSource, open: attach(sourceHolder.addSource, newSource)}
	r["input"] = transition{next: PositionInput, open: attach(inputHolder.addInput, newInputBlock)}
	r["step"] = transition{next: PositionStep, open: attach(stepHolder.addStep, newStep)}
	r["output"] = transition{next: PositionOutput, open: openOutput}

	return r
}

func withHelp(r rule) rule {
	if r == nil {
		r = rule{}
	}

	r["help"] = transition{next: PositionHelp, open: through[helpHolder]}

	return r
}

func withOption(r rule) rule {
	if r == nil {
		r = rule{}
	}

	r["option"] = transition{next: PositionOption, open: attach(optionHolder.addOption, newOption)}

	return r
}

func withSelection(r rule) rule {
	if r == nil {
		r = rule{}
	}

	r["directory"] = transition{next: PositionDirectory, open: through[selector]}
	r["includes"] = transition{next: PositionIncludes, open: through[selector]}
	r["excludes"] = transition{next: PositionExcludes, open: through[selector]}

	return r
}

func keyed() rule {
	return rule{
		"value": {next: PositionModelValue, open: openKeyedValue},
		"list":  {next: PositionModelList, open: openKeyedList},
		"map":   {next: PositionModelMap, open: openKeyedMap},
	}
}

// attach returns an opener that builds a node and adds it to a parent of
// holder type H.
func attach[H, N any](add func(H, N), build func(attributes) (N, error)) opener {
	return func(_ *reader, parent any, a attributes) (any, error) {
		h, ok := parent.(H)
		if !ok {
			return nil, ErrUnexpectedElement
		}

		n, err := build(a)
		if err != nil {
			return nil, err
		}

		add(h, n)

		return n, nil
	}
}

// through is an opener for elements that carry only character data for
// their parent, such as help or includes.
func through[H any](_ *reader, parent any, _ attributes) (any, error) {
	if _, ok := parent.(H); !ok {
		return nil, ErrUnexpectedElement
	}

	return parent, nil
}

// textSetters apply the trimmed character data of a closing element to the
// node on top of the stack. Positions without a setter ignore their text.
var textSetters = map[Position]func(node any, text string) error{
	PositionHelp: func(node any, text string) error {
		return set(node, func(h helpHolder) { h.setHelp(text) })
	},
	PositionContextText: func(node any, text string) error {
		return set(node, func(c *ContextText) { c.Value = text })
	},
	PositionContextBoolean: func(node any, text string) error {
		b, err := strconv.ParseBool(text)
		if err != nil {
			return ErrInvalidValue.Wrap(err)
		}

		return set(node, func(c *ContextBoolean) { c.Value = b })
	},
	PositionContextValue: func(node any, text string) error {
		return set(node, func(v valueHolder) { v.appendValue(text) })
	},
	PositionDirectory: func(node any, text string) error {
		return set(node, func(s selector) { s.selection().Directory = text })
	},
	PositionInclude: func(node any, text string) error {
		return set(node, func(s selector) {
			sel := s.selection()
			sel.Includes = append(sel.Includes, text)
		})
	},
	PositionExclude: func(node any, text string) error {
		return set(node, func(s selector) {
			sel := s.selection()
			sel.Excludes = append(sel.Excludes, text)
		})
	},
	PositionModelValue: func(node any, text string) error {
		return set(node, func(v *ModelValue) { v.Value = text })
	},
}

func set[T any](node any, apply func(T)) error {
	t, ok := node.(T)
	if !ok {
		return ErrUnexpectedElement
	}

	apply(t)

	return nil
}

func openScript(r *reader, _ any, a attributes) (any, error) {
	r.script = &Script{Attributes: map[string]string(a)}

	return r.script, nil
}

func openTopOutput(r *reader, _ any, a attributes) (any, error) {
	if r.script.Output != nil {
		return nil, ErrDuplicateElement
	}

	return &Output{Conditional: a.conditional()}, nil
}

func openOutput(_ *reader, parent any, a attributes) (any, error) {
	h, ok := parent.(outputHolder)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	o := &Output{Conditional: a.conditional()}
	if !h.setOutput(o) {
		return nil, ErrDuplicateElement
	}

	return o, nil
}

func openModel(_ *reader, parent any, a attributes) (any, error) {
	h, ok := parent.(modelHolder)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	m := &Model{Conditional: a.conditional()}
	if !h.setModel(m) {
		return nil, ErrDuplicateElement
	}

	return m, nil
}

func openKeyedValue(_ *reader, parent any, a attributes) (any, error) {
	h, ok := parent.(keyedHolder)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	key, err := a.required("key")
	if err != nil {
		return nil, err
	}

	v, err := newModelValue(a)
	if err != nil {
		return nil, err
	}

	kv := &ModelKeyedValue{Key: key, ModelValue: *v}
	h.addValue(kv)

	return &kv.ModelValue, nil
}

func openKeyedList(_ *reader, parent any, a attributes) (any, error) {
	h, ok := parent.(keyedHolder)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	key, err := a.required("key")
	if err != nil {
		return nil, err
	}

	l, err := newModelList(a)
	if err != nil {
		return nil, err
	}

	kl := &ModelKeyedList{Key: key, ModelList: *l}
	h.addList(kl)

	return &kl.ModelList, nil
}

func openKeyedMap(_ *reader, parent any, a attributes) (any, error) {
	h, ok := parent.(keyedHolder)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	key, err := a.required("key")
	if err != nil {
		return nil, err
	}

	m, err := newModelMap(a)
	if err != nil {
		return nil, err
	}

	km := &ModelKeyedMap{Key: key, ModelMap: *m}
	h.addMap(km)

	return &km.ModelMap, nil
}

func openListValue(_ *reader, parent any, a attributes) (any, error) {
	l, ok := parent.(*ModelList)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	v, err := newModelValue(a)
	if err != nil {
		return nil, err
	}

	l.Values = append(l.Values, v)

	return v, nil
}

func openListList(_ *reader, parent any, a attributes) (any, error) {
	l, ok := parent.(*ModelList)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	inner, err := newModelList(a)
	if err != nil {
		return nil, err
	}

	l.Lists = append(l.Lists, inner)

	return inner, nil
}

func openListMap(_ *reader, parent any, a attributes) (any, error) {
	l, ok := parent.(*ModelList)
	if !ok {
		return nil, ErrUnexpectedElement
	}

	m, err := newModelMap(a)
	if err != nil {
		return nil, err
	}

	l.Maps = append(l.Maps, m)

	return m, nil
}
