package descriptor

// DefaultOrder is the merge priority given to model entries that do not
// declare an order attribute.
const DefaultOrder = 100

// Conditional holds the raw if and unless expressions of a script node. The
// reader stores them verbatim; they are evaluated later with the lang
// package by whoever walks the tree.
type Conditional struct {
	If     string `json:"if,omitempty"     yaml:"if,omitempty"`
	Unless string `json:"unless,omitempty" yaml:"unless,omitempty"`
}

// Script is the root of a descriptor tree.
type Script struct {
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Help       string            `json:"help,omitempty"       yaml:"help,omitempty"`
	Contexts   []*ContextBlock   `json:"contexts,omitempty"   yaml:"contexts,omitempty"`
	Steps      []*Step           `json:"steps,omitempty"      yaml:"steps,omitempty"`
	Inputs     []*InputBlock     `json:"inputs,omitempty"     yaml:"inputs,omitempty"`
	Sources    []*Source         `json:"sources,omitempty"    yaml:"sources,omitempty"`
	Execs      []*Exec           `json:"execs,omitempty"      yaml:"execs,omitempty"`

	// Output is the single output declared directly under the root element.
	// Outputs nested under steps, inputs, and options stay with their owner.
	Output *Output `json:"output,omitempty" yaml:"output,omitempty"`
}

// Exec references another script to run in a fresh context.
type Exec struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
	Src string `json:"src,omitempty" yaml:"src,omitempty"`
}

// Source references another script to run in the current context.
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
	Src string `json:"src,omitempty" yaml:"src,omitempty"`
}

// Branch holds the sub-trees an input or option may own.
type Branch struct {
	Contexts []*ContextBlock `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Execs    []*Exec         `json:"execs,omitempty"    yaml:"execs,omitempty"`
	Sources  []*Source       `json:"sources,omitempty"  yaml:"sources,omitempty"`
	Inputs   []*InputBlock   `json:"inputs,omitempty"   yaml:"inputs,omitempty"`
	Steps    []*Step         `json:"steps,omitempty"    yaml:"steps,omitempty"`
	Output   *Output         `json:"output,omitempty"   yaml:"output,omitempty"`
}

// Step groups the inputs presented together to the user.
type Step struct {
	Conditional `yaml:",inline"`

	Label    string          `json:"label,omitempty"    yaml:"label,omitempty"`
	Help     string          `json:"help,omitempty"     yaml:"help,omitempty"`
	Contexts []*ContextBlock `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Execs    []*Exec         `json:"execs,omitempty"    yaml:"execs,omitempty"`
	Sources  []*Source       `json:"sources,omitempty"  yaml:"sources,omitempty"`
	Inputs   []*InputBlock   `json:"inputs,omitempty"   yaml:"inputs,omitempty"`
	Output   *Output         `json:"output,omitempty"   yaml:"output,omitempty"`
}

// InputBlock is an ordered list of inputs and the sub-trees declared
// alongside them.
type InputBlock struct {
	Entries []Input `json:"entries,omitempty" yaml:"entries,omitempty"`

	Branch `yaml:",inline"`
}

// Input is implemented by [*InputText], [*InputBoolean], [*InputEnum], and
// [*InputList].
type Input interface {
	// Base returns the attributes shared by every input kind.
	Base() *InputBase
	input()
}

// InputBase holds the attributes and sub-trees shared by every input kind.
type InputBase struct {
	Conditional `yaml:",inline"`

	Label    string `json:"label,omitempty"   yaml:"label,omitempty"`
	Name     string `json:"name,omitempty"    yaml:"name,omitempty"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
	Prompt   string `json:"prompt,omitempty"  yaml:"prompt,omitempty"`
	Help     string `json:"help,omitempty"    yaml:"help,omitempty"`
	Optional bool   `json:"optional"          yaml:"optional"`

	Branch `yaml:",inline"`
}

// Base implements [Input].
func (b *InputBase) Base() *InputBase { return b }

// InputText prompts for free-form text.
type InputText struct {
	InputBase `yaml:",inline"`

	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// InputBoolean prompts for a yes or no answer.
type InputBoolean struct {
	InputBase `yaml:",inline"`
}

// InputEnum prompts for exactly one of its options.
type InputEnum struct {
	InputBase `yaml:",inline"`

	Options []*InputOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// InputList prompts for any number of its options.
type InputList struct {
	InputBase `yaml:",inline"`

	Min     string         `json:"min,omitempty"     yaml:"min,omitempty"`
	Max     string         `json:"max,omitempty"     yaml:"max,omitempty"`
	Options []*InputOption `json:"options,omitempty" yaml:"options,omitempty"`
}

func (*InputText) input()    {}
func (*InputBoolean) input() {}
func (*InputEnum) input()    {}
func (*InputList) input()    {}

// InputOption is one choice of an enum or list input. Choosing it activates
// the sub-trees it owns.
type InputOption struct {
	Conditional `yaml:",inline"`

	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Help  string `json:"help,omitempty"  yaml:"help,omitempty"`

	Branch `yaml:",inline"`
}

// ContextBlock is an ordered list of preset answers.
type ContextBlock struct {
	Nodes []Context `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// Context is implemented by [*ContextText], [*ContextBoolean],
// [*ContextEnum], and [*ContextList].
type Context interface {
	// ContextPath returns the dotted input path the answer applies to.
	ContextPath() string
	context()
}

// ContextText presets a text input.
type ContextText struct {
	Path  string `json:"path"            yaml:"path"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// ContextBoolean presets a boolean input.
type ContextBoolean struct {
	Path  string `json:"path"  yaml:"path"`
	Value bool   `json:"value" yaml:"value"`
}

// ContextEnum presets the selection of an enum input.
type ContextEnum struct {
	Path   string   `json:"path"             yaml:"path"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// ContextList presets the selections of a list input.
type ContextList struct {
	Path   string   `json:"path"             yaml:"path"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

func (c *ContextText) ContextPath() string    { return c.Path }
func (c *ContextBoolean) ContextPath() string { return c.Path }
func (c *ContextEnum) ContextPath() string    { return c.Path }
func (c *ContextList) ContextPath() string    { return c.Path }

func (*ContextText) context()    {}
func (*ContextBoolean) context() {}
func (*ContextEnum) context()    {}
func (*ContextList) context()    {}

// Output describes the files generated when its owner is active.
type Output struct {
	Conditional `yaml:",inline"`

	Transformations []*Transformation `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	Files           []*File           `json:"files,omitempty"           yaml:"files,omitempty"`
	FileSets        []*FileSet        `json:"fileSets,omitempty"        yaml:"fileSets,omitempty"`
	Templates       []*Template       `json:"templates,omitempty"       yaml:"templates,omitempty"`
	TemplateSets    []*TemplateSet    `json:"templateSets,omitempty"    yaml:"templateSets,omitempty"`
	Model           *Model            `json:"model,omitempty"           yaml:"model,omitempty"`
}

// Transformation is a named, ordered list of replacements applied to
// generated file names.
type Transformation struct {
	ID           string         `json:"id"                     yaml:"id"`
	Replacements []*Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty"`
}

// Replacement substitutes every match of Regex with Replacement.
type Replacement struct {
	Regex       string `json:"regex"       yaml:"regex"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// File copies a single file.
type File struct {
	If     string `json:"if,omitempty" yaml:"if,omitempty"`
	Source string `json:"source"       yaml:"source"`
	Target string `json:"target"       yaml:"target"`
}

// Selection picks files below a directory by include and exclude patterns.
type Selection struct {
	Directory string   `json:"directory,omitempty" yaml:"directory,omitempty"`
	Includes  []string `json:"includes,omitempty"  yaml:"includes,omitempty"`
	Excludes  []string `json:"excludes,omitempty"  yaml:"excludes,omitempty"`
}

// FileSet copies a selection of files, renaming them by the listed
// transformations.
type FileSet struct {
	If              string   `json:"if,omitempty"              yaml:"if,omitempty"`
	Transformations []string `json:"transformations,omitempty" yaml:"transformations,omitempty"`

	Selection `yaml:",inline"`
}

// Template renders a single file with a template engine.
type Template struct {
	If     string `json:"if,omitempty"     yaml:"if,omitempty"`
	Engine string `json:"engine,omitempty" yaml:"engine,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Model  *Model `json:"model,omitempty"  yaml:"model,omitempty"`
}

// TemplateSet renders a selection of files with a template engine.
type TemplateSet struct {
	If              string   `json:"if,omitempty"              yaml:"if,omitempty"`
	Engine          string   `json:"engine,omitempty"          yaml:"engine,omitempty"`
	Transformations []string `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	Model           *Model   `json:"model,omitempty"           yaml:"model,omitempty"`

	Selection `yaml:",inline"`
}

// Model is the template data contributed by an output. Entries with a lower
// order are merged first.
type Model struct {
	Conditional `yaml:",inline"`

	Values []*ModelKeyedValue `json:"values,omitempty" yaml:"values,omitempty"`
	Lists  []*ModelKeyedList  `json:"lists,omitempty"  yaml:"lists,omitempty"`
	Maps   []*ModelKeyedMap   `json:"maps,omitempty"   yaml:"maps,omitempty"`
}

// ModelValue is a scalar model entry. Its content is either inline text or
// a reference through URL, File, or Template.
type ModelValue struct {
	Conditional `yaml:",inline"`

	Value    string `json:"value,omitempty"    yaml:"value,omitempty"`
	URL      string `json:"url,omitempty"      yaml:"url,omitempty"`
	File     string `json:"file,omitempty"     yaml:"file,omitempty"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
	Order    int    `json:"order"              yaml:"order"`
}

// ModelList is an ordered model collection of unkeyed entries.
type ModelList struct {
	Conditional `yaml:",inline"`

	Order  int           `json:"order"            yaml:"order"`
	Values []*ModelValue `json:"values,omitempty" yaml:"values,omitempty"`
	Lists  []*ModelList  `json:"lists,omitempty"  yaml:"lists,omitempty"`
	Maps   []*ModelMap   `json:"maps,omitempty"   yaml:"maps,omitempty"`
}

// ModelMap is a model collection of keyed entries.
type ModelMap struct {
	Conditional `yaml:",inline"`

	Order  int                `json:"order"            yaml:"order"`
	Values []*ModelKeyedValue `json:"values,omitempty" yaml:"values,omitempty"`
	Lists  []*ModelKeyedList  `json:"lists,omitempty"  yaml:"lists,omitempty"`
	Maps   []*ModelKeyedMap   `json:"maps,omitempty"   yaml:"maps,omitempty"`
}

// ModelKeyedValue is a [ModelValue] stored under Key.
type ModelKeyedValue struct {
	Key string `json:"key" yaml:"key"`

	ModelValue `yaml:",inline"`
}

// ModelKeyedList is a [ModelList] stored under Key.
type ModelKeyedList struct {
	Key string `json:"key" yaml:"key"`

	ModelList `yaml:",inline"`
}

// ModelKeyedMap is a [ModelMap] stored under Key.
type ModelKeyedMap struct {
	Key string `json:"key" yaml:"key"`

	ModelMap `yaml:",inline"`
}
