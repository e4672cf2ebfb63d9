package extractr_test

import (
	"testing"

	"github.com/Tylerbryy/extractr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTemplate() *extractr.Template {
	return &extractr.Template{
		Name:      "products",
		Container: ".product-card",
		Fields: []extractr.FieldDefinition{
			{Name: "title", Selector: "h2"},
			{Name: "price", Selector: ".price", Type: extractr.TypeCurrency},
		},
	}
}

func TestValidateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid template", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extractr.ValidateTemplate(validTemplate()))
	})

	t.Run("reports nil template", func(t *testing.T) {
		t.Parallel()

		errs := extractr.ValidateTemplate(nil)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "template is required")
	})

	t.Run("accumulates all top-level violations", func(t *testing.T) {
		t.Parallel()

		errs := extractr.ValidateTemplate(&extractr.Template{})

		require.Len(t, errs, 3)
		assert.Contains(t, errs[0], "name is required")
		assert.Contains(t, errs[1], "container selector is required")
		assert.Contains(t, errs[2], "at least one field is required")
	})

	t.Run("rejects missing field name and selector", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields = append(tmpl.Fields, extractr.FieldDefinition{})

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "fields[2]: field name is required")
		assert.Contains(t, errs[1], "fields[2]: field selector is required")
	})

	t.Run("rejects unknown field type", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields[0].Type = "decimal"

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], `unknown field type "decimal"`)
	})

	t.Run("validates nested fields recursively", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields[0].Nested = []extractr.FieldDefinition{
			{Name: "inner", Selector: "span", Nested: []extractr.FieldDefinition{
				{Selector: "em"}, // missing name, two levels deep
			}},
		}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "fields[0].nested[0].nested[0]: field name is required")
	})

	t.Run("rejects unknown transform type", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields[0].Transforms = []extractr.Transform{{Type: "camelCase"}}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], `unknown transform type "camelCase"`)
	})

	t.Run("requires pattern for replace and regex transforms", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields[0].Transforms = []extractr.Transform{
			{Type: extractr.TransformReplace},
			{Type: extractr.TransformRegex},
		}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "replace transform requires a pattern")
		assert.Contains(t, errs[1], "regex transform requires a pattern")
	})

	t.Run("distinguishes dangerous from invalid patterns", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Fields[0].Transforms = []extractr.Transform{
			{Type: extractr.TransformRegex, Params: extractr.TransformParams{Pattern: `(.*)+`}},
			{Type: extractr.TransformRegex, Params: extractr.TransformParams{Pattern: `[unclosed`}},
		}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "potentially dangerous regex pattern")
		assert.Contains(t, errs[1], "invalid regex pattern")
	})

	t.Run("rejects negative regex group", func(t *testing.T) {
		t.Parallel()

		group := -1
		tmpl := validTemplate()
		tmpl.Fields[0].Transforms = []extractr.Transform{
			{Type: extractr.TransformRegex, Params: extractr.TransformParams{Pattern: `\d+`, Group: &group}},
		}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "group must be a non-negative number")
	})

	t.Run("validates pagination config", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Pagination = &extractr.PaginationConfig{MaxPages: -1, WaitMs: -5}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 3)
		assert.Contains(t, errs[0], "nextSelector is required")
		assert.Contains(t, errs[1], "maxPages must be at least 1")
		assert.Contains(t, errs[2], "waitMs must be non-negative")
	})

	t.Run("validates template options", func(t *testing.T) {
		t.Parallel()

		tmpl := validTemplate()
		tmpl.Options = &extractr.TemplateOptions{Timeout: -1, WaitMs: -1}

		errs := extractr.ValidateTemplate(tmpl)

		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "timeout must be non-negative")
		assert.Contains(t, errs[1], "waitMs must be non-negative")
	})
}
