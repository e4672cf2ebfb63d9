package extractr

import (
	"fmt"
	"regexp"
)

// ValidateTemplate checks a template against the extraction rules and
// returns every violation found as a human-readable message. An empty
// list means the template is valid. It never panics: a nil template is
// reported as its own error.
func ValidateTemplate(t *Template) []string {
	if t == nil {
		return []string{"template is required"}
	}

	var errs []string

	if t.Name == "" {
		errs = append(errs, "template name is required")
	}
	if t.Container == "" {
		errs = append(errs, "container selector is required")
	}
	if len(t.Fields) == 0 {
		errs = append(errs, "at least one field is required")
	}

	for i, f := range t.Fields {
		errs = append(errs, validateField(f, fmt.Sprintf("fields[%d]", i))...)
	}

	if t.Pagination != nil {
		errs = append(errs, validatePagination(t.Pagination)...)
	}
	if t.Options != nil {
		errs = append(errs, validateOptions(t.Options)...)
	}

	return errs
}

// validateField checks one field definition, recursing into nested
// fields at arbitrary depth. The path identifies the field in messages,
// e.g. "fields[0].nested[2]".
func validateField(f FieldDefinition, path string) []string {
	var errs []string

	if f.Name == "" {
		errs = append(errs, path+": field name is required")
	}
	if f.Selector == "" {
		errs = append(errs, path+": field selector is required")
	}
	if f.Type != "" && !validFieldType(f.Type) {
		errs = append(errs, fmt.Sprintf("%s: unknown field type %q", path, f.Type))
	}

	for i, tr := range f.Transforms {
		errs = append(errs, validateTransform(tr, fmt.Sprintf("%s.transforms[%d]", path, i))...)
	}

	for i, nested := range f.Nested {
		errs = append(errs, validateField(nested, fmt.Sprintf("%s.nested[%d]", path, i))...)
	}

	return errs
}

// validateTransform checks one transform step and its params.
func validateTransform(tr Transform, path string) []string {
	var errs []string

	if !validTransformType(tr.Type) {
		errs = append(errs, fmt.Sprintf("%s: unknown transform type %q", path, tr.Type))
		return errs
	}

	switch tr.Type {
	case TransformReplace, TransformRegex:
		if tr.Params.Pattern == "" {
			errs = append(errs, fmt.Sprintf("%s: %s transform requires a pattern", path, tr.Type))
			break
		}
		if isDangerousPattern(tr.Params.Pattern) {
			errs = append(errs, fmt.Sprintf("%s: potentially dangerous regex pattern %q", path, tr.Params.Pattern))
		} else if _, err := regexp.Compile(tr.Params.Pattern); err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid regex pattern %q: %v", path, tr.Params.Pattern, err))
		}
		if tr.Type == TransformRegex && tr.Params.Group != nil && *tr.Params.Group < 0 {
			errs = append(errs, fmt.Sprintf("%s: group must be a non-negative number", path))
		}
	case TransformSlice:
		// Start and End are optional; the typed params already force
		// them to be numbers when present, so nothing more to check.
	}

	return errs
}

// validatePagination checks the pagination config.
func validatePagination(p *PaginationConfig) []string {
	var errs []string

	if p.NextSelector == "" {
		errs = append(errs, "pagination nextSelector is required")
	}
	if p.MaxPages < 0 {
		errs = append(errs, "pagination maxPages must be at least 1")
	}
	if p.WaitMs < 0 {
		errs = append(errs, "pagination waitMs must be non-negative")
	}

	return errs
}

// validateOptions checks the template options.
func validateOptions(o *TemplateOptions) []string {
	var errs []string

	if o.Timeout < 0 {
		errs = append(errs, "options timeout must be non-negative")
	}
	if o.WaitMs < 0 {
		errs = append(errs, "options waitMs must be non-negative")
	}

	return errs
}

func validFieldType(t FieldType) bool {
	for _, ft := range FieldTypes() {
		if t == ft {
			return true
		}
	}
	return false
}

func validTransformType(t TransformType) bool {
	for _, tt := range TransformTypes() {
		if t == tt {
			return true
		}
	}
	return false
}
