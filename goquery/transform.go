package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Tylerbryy/extractr"
	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// applyTransform runs one pipeline step. The incoming value is
// stringified before the operation (split output excepted: it joins
// back with commas when a later step needs a string). Failures leave
// the value unchanged rather than erroring, so one bad step never
// poisons the pipeline.
func applyTransform(value any, tr extractr.Transform) any {
	switch tr.Type {
	case extractr.TransformTrim:
		return strings.TrimSpace(stringify(value))

	case extractr.TransformLowercase:
		return strings.ToLower(stringify(value))

	case extractr.TransformUppercase:
		return strings.ToUpper(stringify(value))

	case extractr.TransformReplace:
		re, ok := compilePattern(tr.Params.Pattern, tr.Params.Flags)
		if !ok {
			return value
		}
		return re.ReplaceAllString(stringify(value), tr.Params.Replacement)

	case extractr.TransformRegex:
		re, ok := compilePattern(tr.Params.Pattern, tr.Params.Flags)
		if !ok {
			return value
		}
		match := re.FindStringSubmatch(stringify(value))
		if match == nil {
			return value
		}
		group := 0
		if tr.Params.Group != nil {
			group = *tr.Params.Group
		}
		if group < 0 || group >= len(match) {
			return value
		}
		return match[group]

	case extractr.TransformSplit:
		separator := tr.Params.Separator
		if separator == "" {
			separator = ","
		}
		return strings.Split(stringify(value), separator)

	case extractr.TransformSlice:
		return sliceString(stringify(value), tr.Params.Start, tr.Params.End)

	case extractr.TransformParseInt:
		return parseIntValue(stringify(value))

	case extractr.TransformParseFloat:
		return parseFloatValue(stringify(value))
	}

	return value
}

// coerce applies the field's declared type as the final step. Text and
// unset types are a no-op.
func coerce(value any, fieldType extractr.FieldType, pageURL string) any {
	switch fieldType {
	case extractr.TypeNumber, extractr.TypeCurrency:
		return parseFloatValue(stringify(value))

	case extractr.TypeDate:
		parsed, err := dateparse.ParseAny(stringify(value))
		if err != nil {
			return nil
		}
		return parsed.Format(time.RFC3339)

	case extractr.TypeBoolean:
		return truthy(value)

	case extractr.TypeList:
		switch v := value.(type) {
		case []string:
			return v
		case []any:
			return v
		default:
			return []string{stringify(value)}
		}

	case extractr.TypeURL:
		return resolveValueURL(stringify(value), pageURL)
	}

	return value
}

// compilePattern is the fail-closed regex gate on the extraction path:
// a pattern that does not pass the safety check never reaches the
// engine, even when the template skipped validation. Flags follow the
// common i/m/s notation.
func compilePattern(pattern, flags string) (*regexp.Regexp, bool) {
	if !extractr.IsSafePattern(pattern) {
		return nil, false
	}
	if flags != "" {
		var goFlags strings.Builder
		for _, f := range []string{"i", "m", "s"} {
			if strings.Contains(flags, f) {
				goFlags.WriteString(f)
			}
		}
		if goFlags.Len() > 0 {
			pattern = "(?" + goFlags.String() + ")" + pattern
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}

// sliceString takes the substring [start, end), with negative indexes
// counted from the end of the string. Start defaults to 0, end to the
// string's length.
func sliceString(s string, start, end *int) string {
	runes := []rune(s)
	length := len(runes)

	from := 0
	if start != nil {
		from = clampIndex(*start, length)
	}
	to := length
	if end != nil {
		to = clampIndex(*end, length)
	}
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}

func clampIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// parseIntValue strips every character outside the integer charset and
// parses the remainder. Unparsable input yields 0, never an error.
func parseIntValue(s string) int {
	cleaned := stripOutside(s, "0123456789-")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// parseFloatValue strips every character outside the float charset and
// parses the remainder. Unparsable input yields 0.
func parseFloatValue(s string) float64 {
	cleaned := stripOutside(s, "0123456789.-")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

func stripOutside(s, charset string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(charset, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stringify renders a value as a string between pipeline steps. String
// slices join with commas; anything cast can't handle becomes "".
func stringify(value any) string {
	if ss, ok := value.([]string); ok {
		return strings.Join(ss, ",")
	}
	return cast.ToString(value)
}

// truthy reports the truthiness of a value: nil, empty strings, zero
// numbers, false, and empty lists are falsy; everything else is truthy.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case []extractr.Record:
		return len(v) > 0
	default:
		return true
	}
}

// resolveValueURL resolves a relative value against the page's current
// address. Absolute values pass through; any resolution failure returns
// the value unchanged.
func resolveValueURL(value, pageURL string) string {
	ref, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return value
	}
	return base.ResolveReference(ref).String()
}
