package extractr

// FieldType identifies how a field's final value is coerced.
type FieldType string

// Field types supported by templates. An empty type means text.
const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeCurrency FieldType = "currency"
	TypeDate     FieldType = "date"
	TypeBoolean  FieldType = "boolean"
	TypeList     FieldType = "list"
	TypeNested   FieldType = "nested"
	TypeHTML     FieldType = "html"
	TypeURL      FieldType = "url"
)

// FieldTypes returns the set of valid field types.
func FieldTypes() []FieldType {
	return []FieldType{
		TypeText, TypeNumber, TypeCurrency, TypeDate, TypeBoolean,
		TypeList, TypeNested, TypeHTML, TypeURL,
	}
}

// TransformType identifies one step of a field's transform pipeline.
type TransformType string

// Transform types supported by templates.
const (
	TransformTrim       TransformType = "trim"
	TransformLowercase  TransformType = "lowercase"
	TransformUppercase  TransformType = "uppercase"
	TransformReplace    TransformType = "replace"
	TransformRegex      TransformType = "regex"
	TransformSplit      TransformType = "split"
	TransformSlice      TransformType = "slice"
	TransformParseInt   TransformType = "parseInt"
	TransformParseFloat TransformType = "parseFloat"
)

// TransformTypes returns the set of valid transform types.
func TransformTypes() []TransformType {
	return []TransformType{
		TransformTrim, TransformLowercase, TransformUppercase,
		TransformReplace, TransformRegex, TransformSplit,
		TransformSlice, TransformParseInt, TransformParseFloat,
	}
}

// SiblingPrefix marks a selector that is resolved against the
// container's parent instead of the container itself.
const SiblingPrefix = "~ "

// Template declares how records are extracted from a page: a container
// selector matched once per record, an ordered field list, and optional
// pagination and page-readiness options. Templates are immutable once
// loaded and owned by the caller for the duration of one extraction.
type Template struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Container   string            `yaml:"container" json:"container"`
	Fields      []FieldDefinition `yaml:"fields" json:"fields"`
	Pagination  *PaginationConfig `yaml:"pagination,omitempty" json:"pagination,omitempty"`
	Options     *TemplateOptions  `yaml:"options,omitempty" json:"options,omitempty"`
}

// FieldDefinition declares one named value extracted from a container.
// When Nested is present the field evaluates to a list of sub-records,
// one per element matched by Selector.
type FieldDefinition struct {
	Name       string            `yaml:"name" json:"name"`
	Selector   string            `yaml:"selector" json:"selector"`
	Type       FieldType         `yaml:"type,omitempty" json:"type,omitempty"`
	Attr       string            `yaml:"attr,omitempty" json:"attr,omitempty"`
	Transforms []Transform       `yaml:"transforms,omitempty" json:"transforms,omitempty"`
	Fallback   any               `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Nested     []FieldDefinition `yaml:"nested,omitempty" json:"nested,omitempty"`
}

// Transform is one step of a field's pipeline. Params are interpreted
// according to Type; each transform kind reads only the params it uses.
type Transform struct {
	Type   TransformType   `yaml:"type" json:"type"`
	Params TransformParams `yaml:"params,omitempty" json:"params,omitempty"`
}

// TransformParams is the option bag shared by all transform kinds.
// Pointer fields distinguish "absent" from an explicit zero.
type TransformParams struct {
	Pattern     string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Flags       string `yaml:"flags,omitempty" json:"flags,omitempty"`
	Replacement string `yaml:"replacement,omitempty" json:"replacement,omitempty"`
	Group       *int   `yaml:"group,omitempty" json:"group,omitempty"`
	Separator   string `yaml:"separator,omitempty" json:"separator,omitempty"`
	Start       *int   `yaml:"start,omitempty" json:"start,omitempty"`
	End         *int   `yaml:"end,omitempty" json:"end,omitempty"`
}

// PaginationConfig declares how the orchestrator advances to the next
// page of results.
type PaginationConfig struct {
	NextSelector string `yaml:"nextSelector" json:"nextSelector"`
	MaxPages     int    `yaml:"maxPages,omitempty" json:"maxPages,omitempty"`
	WaitMs       int    `yaml:"waitMs,omitempty" json:"waitMs,omitempty"`
}

// Pages returns the page cap, defaulting to 1.
func (p *PaginationConfig) Pages() int {
	if p == nil || p.MaxPages < 1 {
		return 1
	}
	return p.MaxPages
}

// Delay returns the post-pagination settle delay in milliseconds,
// defaulting to 2000.
func (p *PaginationConfig) Delay() int {
	if p == nil || p.WaitMs == 0 {
		return 2000
	}
	return p.WaitMs
}

// TemplateOptions control page readiness and timing.
type TemplateOptions struct {
	WaitForSelector string `yaml:"waitForSelector,omitempty" json:"waitForSelector,omitempty"`
	WaitMs          int    `yaml:"waitMs,omitempty" json:"waitMs,omitempty"`
	EnableJS        *bool  `yaml:"enableJs,omitempty" json:"enableJs,omitempty"`
	Timeout         int    `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// JSEnabled reports whether navigation should wait for network idle
// (true, the default) or bare DOM-ready.
func (o *TemplateOptions) JSEnabled() bool {
	if o == nil || o.EnableJS == nil {
		return true
	}
	return *o.EnableJS
}

// TimeoutMs returns the overall extraction budget in milliseconds,
// defaulting to 30000.
func (o *TemplateOptions) TimeoutMs() int {
	if o == nil || o.Timeout == 0 {
		return 30000
	}
	return o.Timeout
}

// FieldNames returns the top-level field names in declaration order.
// Output formatters use this for stable column ordering.
func (t *Template) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}
