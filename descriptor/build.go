package descriptor

func newContextBlock(attributes) (*ContextBlock, error) { return &ContextBlock{}, nil }
func newInputBlock(attributes) (*InputBlock, error)     { return &InputBlock{}, nil }

func newExec(a attributes) (*Exec, error) {
	return &Exec{URL: a.get("url"), Src: a.get("src")}, nil
}

func newSource(a attributes) (*Source, error) {
	return &Source{URL: a.get("url"), Src: a.get("src")}, nil
}

func newStep(a attributes) (*Step, error) {
	return &Step{Conditional: a.conditional(), Label: a.get("label")}, nil
}

func newInputBase(a attributes) (InputBase, error) {
	optional, err := a.optional()
	if err != nil {
		return InputBase{}, err
	}

	return InputBase{
		Conditional: a.conditional(),
		Label:       a.get("label"),
		Name:        a.get("name"),
		Default:     a.get("default"),
		Prompt:      a.get("prompt"),
		Optional:    optional,
	}, nil
}

func newInputText(a attributes) (Input, error) {
	base, err := newInputBase(a)
	if err != nil {
		return nil, err
	}

	return &InputText{InputBase: base, Placeholder: a.get("placeholder")}, nil
}

func newInputBoolean(a attributes) (Input, error) {
	base, err := newInputBase(a)
	if err != nil {
		return nil, err
	}

	return &InputBoolean{InputBase: base}, nil
}

func newInputEnum(a attributes) (Input, error) {
	base, err := newInputBase(a)
	if err != nil {
		return nil, err
	}

	return &InputEnum{InputBase: base}, nil
}

func newInputList(a attributes) (Input, error) {
	base, err := newInputBase(a)
	if err != nil {
		return nil, err
	}

	return &InputList{InputBase: base, Min: a.get("min"), Max: a.get("max")}, nil
}

func newOption(a attributes) (*InputOption, error) {
	return &InputOption{
		Conditional: a.conditional(),
		Label:       a.get("label"),
		Value:       a.get("value"),
	}, nil
}

func newContextText(a attributes) (Context, error) {
	path, err := a.required("path")
	if err != nil {
		return nil, err
	}

	return &ContextText{Path: path}, nil
}

func newContextBoolean(a attributes) (Context, error) {
	path, err := a.required("path")
	if err != nil {
		return nil, err
	}

	return &ContextBoolean{Path: path}, nil
}

func newContextEnum(a attributes) (Context, error) {
	path, err := a.required("path")
	if err != nil {
		return nil, err
	}

	return &ContextEnum{Path: path}, nil
}

func newContextList(a attributes) (Context, error) {
	path, err := a.required("path")
	if err != nil {
		return nil, err
	}

	return &ContextList{Path: path}, nil
}

func newTransformation(a attributes) (*Transformation, error) {
	id, err := a.required("id")
	if err != nil {
		return nil, err
	}

	return &Transformation{ID: id}, nil
}

func newReplacement(a attributes) (*Replacement, error) {
	regex, err := a.required("regex")
	if err != nil {
		return nil, err
	}

	replacement, err := a.required("replacement")
	if err != nil {
		return nil, err
	}

	return &Replacement{Regex: regex, Replacement: replacement}, nil
}

func newFile(a attributes) (*File, error) {
	source, err := a.required("source")
	if err != nil {
		return nil, err
	}

	target, err := a.required("target")
	if err != nil {
		return nil, err
	}

	return &File{If: a.get("if"), Source: source, Target: target}, nil
}

func newFileSet(a attributes) (*FileSet, error) {
	return &FileSet{
		If:              a.get("if"),
		Transformations: a.list("transformations"),
	}, nil
}

func newTemplate(a attributes) (*Template, error) {
	return &Template{
		If:     a.get("if"),
		Engine: a.get("engine"),
		Source: a.get("source"),
		Target: a.get("target"),
	}, nil
}

func newTemplateSet(a attributes) (*TemplateSet, error) {
	return &TemplateSet{
		If:              a.get("if"),
		Engine:          a.get("engine"),
		Transformations: a.list("transformations"),
	}, nil
}

func newModelValue(a attributes) (*ModelValue, error) {
	order, err := a.order()
	if err != nil {
		return nil, err
	}

	return &ModelValue{
		Conditional: a.conditional(),
		URL:         a.get("url"),
		File:        a.get("file"),
		Template:    a.get("template"),
		Order:       order,
	}, nil
}

func newModelList(a attributes) (*ModelList, error) {
	order, err := a.order()
	if err != nil {
		return nil, err
	}

	return &ModelList{Conditional: a.conditional(), Order: order}, nil
}

func newModelMap(a attributes) (*ModelMap, error) {
	order, err := a.order()
	if err != nil {
		return nil, err
	}

	return &ModelMap{Conditional: a.conditional(), Order: order}, nil
}
