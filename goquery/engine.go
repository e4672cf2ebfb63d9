// Package goquery implements the field extraction engine on top of
// goquery selections. The engine is pure: given rendered HTML, a
// template, and the page URL, it produces one record per container
// match with no side effects, so any DOM source (a live browser, an
// HTTP response, or a test fixture) can feed it.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tylerbryy/extractr"
)

// Evaluate parses HTML and extracts one record per element matched by
// the template's container selector, preserving DOM order. Field
// failures never abort a record; the failing field falls back to its
// declared fallback value, or nil.
func Evaluate(html string, tmpl *extractr.Template, pageURL string) ([]extractr.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, extractr.Errorf(extractr.EEXTRACTIONFAILED, "failed to parse HTML: %v", err)
	}

	var records []extractr.Record
	doc.Find(tmpl.Container).Each(func(_ int, container *goquery.Selection) {
		records = append(records, buildRecord(container, tmpl.Fields, pageURL))
	})

	return records, nil
}

// buildRecord evaluates every field against one container element.
// Each declared field produces exactly one key, so record shape is
// stable across all items of a run even under partial field failures.
func buildRecord(container *goquery.Selection, fields []extractr.FieldDefinition, pageURL string) extractr.Record {
	record := make(extractr.Record, len(fields))
	for _, field := range fields {
		record[field.Name] = extractField(container, field, pageURL)
	}
	return record
}

// extractField evaluates one field against its container. The recover
// guard converts any panic out of a transform or coercion step into the
// field's fallback value.
func extractField(container *goquery.Selection, field extractr.FieldDefinition, pageURL string) (value any) {
	defer func() {
		if r := recover(); r != nil {
			value = fallbackValue(field)
		}
	}()

	// A field with nested definitions evaluates to a list of
	// sub-records, one per selector match, possibly empty.
	if len(field.Nested) > 0 {
		subRecords := []extractr.Record{}
		container.Find(field.Selector).Each(func(_ int, sub *goquery.Selection) {
			subRecords = append(subRecords, buildRecord(sub, field.Nested, pageURL))
		})
		return subRecords
	}

	target := resolveTarget(container, field.Selector)
	if target.Length() == 0 {
		return fallbackValue(field)
	}

	raw, err := rawValue(target, field)
	if err != nil {
		return fallbackValue(field)
	}

	value = any(raw)
	for _, tr := range field.Transforms {
		value = applyTransform(value, tr)
	}

	return coerce(value, field.Type, pageURL)
}

// resolveTarget finds the first element for a field selector. A
// selector prefixed with "~ " is sibling-scoped: it is resolved against
// the container's parent rather than the container itself.
func resolveTarget(container *goquery.Selection, selector string) *goquery.Selection {
	if rest, ok := strings.CutPrefix(selector, extractr.SiblingPrefix); ok {
		return container.Parent().Find(rest).First()
	}
	return container.Find(selector).First()
}

// rawValue extracts the pre-transform value from the target element:
// the named attribute when attr is set, inner markup for html fields,
// trimmed text content otherwise.
func rawValue(target *goquery.Selection, field extractr.FieldDefinition) (string, error) {
	if field.Attr != "" {
		return target.AttrOr(field.Attr, ""), nil
	}
	if field.Type == extractr.TypeHTML {
		return target.Html()
	}
	return strings.TrimSpace(target.Text()), nil
}

func fallbackValue(field extractr.FieldDefinition) any {
	if field.Fallback != nil {
		return field.Fallback
	}
	return nil
}
