package goquery_test

import (
	"fmt"
	"testing"

	"github.com/Tylerbryy/extractr"
	"github.com/Tylerbryy/extractr/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSingle runs one field with the given transforms over a minimal
// document and returns the resulting value.
func evalSingle(t *testing.T, text string, fieldType extractr.FieldType, transforms ...extractr.Transform) any {
	t.Helper()

	html := fmt.Sprintf(`<div class="c"><span class="v">%s</span></div>`, text)
	tmpl := &extractr.Template{
		Name:      "single",
		Container: ".c",
		Fields: []extractr.FieldDefinition{
			{Name: "value", Selector: ".v", Type: fieldType, Transforms: transforms},
		},
	}

	records, err := goquery.Evaluate(html, tmpl, "https://example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]["value"]
}

func intPtr(n int) *int { return &n }

func TestTransforms(t *testing.T) {
	t.Parallel()

	t.Run("case and trim", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", evalSingle(t, "  Hello  ", "",
			extractr.Transform{Type: extractr.TransformTrim},
			extractr.Transform{Type: extractr.TransformLowercase},
		))
		assert.Equal(t, "HELLO", evalSingle(t, "hello", "",
			extractr.Transform{Type: extractr.TransformUppercase},
		))
	})

	t.Run("replace substitutes all matches", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "a-b-c", "", extractr.Transform{
			Type:   extractr.TransformReplace,
			Params: extractr.TransformParams{Pattern: "-", Replacement: "_"},
		})
		assert.Equal(t, "a_b_c", got)
	})

	t.Run("replace with case-insensitive flag", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "USD 10 usd", "", extractr.Transform{
			Type:   extractr.TransformReplace,
			Params: extractr.TransformParams{Pattern: "usd", Flags: "i"},
		})
		assert.Equal(t, " 10 ", got)
	})

	t.Run("replace with invalid pattern leaves value unchanged", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "unchanged", "", extractr.Transform{
			Type:   extractr.TransformReplace,
			Params: extractr.TransformParams{Pattern: "[unclosed"},
		})
		assert.Equal(t, "unchanged", got)
	})

	t.Run("replace with dangerous pattern leaves value unchanged", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "unchanged", "", extractr.Transform{
			Type:   extractr.TransformReplace,
			Params: extractr.TransformParams{Pattern: "(.*)+"},
		})
		assert.Equal(t, "unchanged", got)
	})

	t.Run("regex extracts capture group", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "Price: $42.50", "", extractr.Transform{
			Type:   extractr.TransformRegex,
			Params: extractr.TransformParams{Pattern: `\$([0-9.]+)`, Group: intPtr(1)},
		})
		assert.Equal(t, "42.50", got)
	})

	t.Run("regex defaults to whole match", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "order #123 shipped", "", extractr.Transform{
			Type:   extractr.TransformRegex,
			Params: extractr.TransformParams{Pattern: `#\d+`},
		})
		assert.Equal(t, "#123", got)
	})

	t.Run("regex with no match leaves value unchanged", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "no digits here", "", extractr.Transform{
			Type:   extractr.TransformRegex,
			Params: extractr.TransformParams{Pattern: `\d+`},
		})
		assert.Equal(t, "no digits here", got)
	})

	t.Run("transform order is preserved exactly as declared", func(t *testing.T) {
		t.Parallel()

		// regex group 1 of "$1,234.56" is "1"; parseInt then yields 1,
		// not the full numeric value.
		got := evalSingle(t, "$1,234.56", "",
			extractr.Transform{
				Type:   extractr.TransformRegex,
				Params: extractr.TransformParams{Pattern: `(\d+),(\d+)`, Group: intPtr(1)},
			},
			extractr.Transform{Type: extractr.TransformParseInt},
		)
		assert.Equal(t, 1, got)
	})

	t.Run("split produces an ordered list", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "red, green, blue", extractr.TypeList,
			extractr.Transform{
				Type:   extractr.TransformSplit,
				Params: extractr.TransformParams{Separator: ", "},
			},
		)
		assert.Equal(t, []string{"red", "green", "blue"}, got)
	})

	t.Run("split defaults to comma", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "a,b", extractr.TypeList,
			extractr.Transform{Type: extractr.TransformSplit},
		)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("slice takes a substring", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "hello", "", extractr.Transform{
			Type:   extractr.TransformSlice,
			Params: extractr.TransformParams{Start: intPtr(0), End: intPtr(3)},
		})
		assert.Equal(t, "hel", got)
	})

	t.Run("slice supports negative indexes", func(t *testing.T) {
		t.Parallel()

		got := evalSingle(t, "hello", "", extractr.Transform{
			Type:   extractr.TransformSlice,
			Params: extractr.TransformParams{Start: intPtr(-3)},
		})
		assert.Equal(t, "llo", got)
	})

	t.Run("parseInt strips punctuation and never yields NaN", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1234, evalSingle(t, "$1,234 items", "",
			extractr.Transform{Type: extractr.TransformParseInt}))
		assert.Equal(t, 0, evalSingle(t, "no numbers", "",
			extractr.Transform{Type: extractr.TransformParseInt}))
	})

	t.Run("parseFloat strips currency markers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 12.5, evalSingle(t, "$12.50 USD", "",
			extractr.Transform{Type: extractr.TransformParseFloat}))
		assert.Equal(t, 0.0, evalSingle(t, "free", "",
			extractr.Transform{Type: extractr.TransformParseFloat}))
	})

	t.Run("number coercion on unparsable input yields zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, evalSingle(t, "call for price", extractr.TypeNumber))
	})

	t.Run("list coercion wraps a bare value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"solo"}, evalSingle(t, "solo", extractr.TypeList))
	})
}
